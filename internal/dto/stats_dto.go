package dto

type DashboardStatsResponse struct {
	TotalDocuments int `json:"totalDocuments"`
	StorageUsed    int `json:"storageUsed"`
	QueriesToday   int `json:"queriesToday"`
	Processing     int `json:"processing"`
}

type DocumentStats struct {
	TotalDocuments int `json:"totalDocuments"`
	ProcessedToday int `json:"processedToday"`
	ProcessingTime int `json:"processingTime"`
	ErrorRate      int `json:"errorRate"`
}

type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type UserActivity struct {
	TotalQueries    int         `json:"totalQueries"`
	ActiveUsers     int         `json:"activeUsers"`
	AvgResponseTime int         `json:"avgResponseTime"`
	PopularTimes    []HourCount `json:"popularTimes"`
}

type SystemPerformance struct {
	CpuUsage      int `json:"cpuUsage"`
	MemoryUsage   int `json:"memoryUsage"`
	DiskUsage     int `json:"diskUsage"`
	IndexingSpeed int `json:"indexingSpeed"`
}

type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type FileTypeCount struct {
	Type       string `json:"type"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type Trends struct {
	DocumentsOverTime []DateCount     `json:"documentsOverTime"`
	QueriesOverTime   []DateCount     `json:"queriesOverTime"`
	FileTypes         []FileTypeCount `json:"fileTypes"`
}

type AnalyticsResponse struct {
	DocumentStats     DocumentStats     `json:"documentStats"`
	UserActivity      UserActivity      `json:"userActivity"`
	SystemPerformance SystemPerformance `json:"systemPerformance"`
	Trends            Trends            `json:"trends"`
}
