package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/repository/specification"
	"docintel-be/internal/repository/unitofwork"
)

var ErrInvalidRange = errors.New("range must be one of: day, week, month")

type IStatsService interface {
	DashboardStats(ctx context.Context, user *entity.User) (*dto.DashboardStatsResponse, error)
	Analytics(ctx context.Context, userId uint, rangeParam string) (*dto.AnalyticsResponse, error)
}

type statsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStatsService(uowFactory unitofwork.RepositoryFactory) IStatsService {
	return &statsService{
		uowFactory: uowFactory,
	}
}

func (s *statsService) DashboardStats(ctx context.Context, user *entity.User) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalDocs, err := uow.DocumentRepository().Count(ctx, specification.OwnedBy{UserID: user.Id})
	if err != nil {
		return nil, err
	}
	processing, err := uow.DocumentRepository().Count(ctx,
		specification.OwnedBy{UserID: user.Id},
		specification.ProcessingOnly{},
	)
	if err != nil {
		return nil, err
	}

	// Queries today: user-role messages since local midnight.
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	queriesToday, err := uow.MessageRepository().Count(ctx,
		specification.OwnedBy{UserID: user.Id},
		specification.ByRole{Role: string(entity.MessageRoleUser)},
		specification.CreatedSince{Since: midnight},
	)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalDocuments: int(totalDocs),
		StorageUsed:    user.StorageUsedMB,
		QueriesToday:   int(queriesToday),
		Processing:     int(processing),
	}, nil
}

// Analytics returns real document/query counts wrapped in synthesized
// operational metrics. The range parameter is validated but currently only
// affects the client-side display window.
func (s *statsService) Analytics(ctx context.Context, userId uint, rangeParam string) (*dto.AnalyticsResponse, error) {
	switch rangeParam {
	case "day", "week", "month":
	default:
		return nil, ErrInvalidRange
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	docs, err := uow.DocumentRepository().FindAll(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	totalQueries, err := uow.MessageRepository().Count(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByRole{Role: string(entity.MessageRoleUser)},
	)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyticsResponse{
		DocumentStats: dto.DocumentStats{
			TotalDocuments: len(docs),
			ProcessedToday: rand.Intn(5) + 1,
			ProcessingTime: rand.Intn(30) + 15,
			ErrorRate:      rand.Intn(5) + 1,
		},
		UserActivity: dto.UserActivity{
			TotalQueries:    int(totalQueries),
			ActiveUsers:     1,
			AvgResponseTime: rand.Intn(1000) + 500,
			PopularTimes:    popularTimes(),
		},
		SystemPerformance: dto.SystemPerformance{
			CpuUsage:      rand.Intn(30) + 20,
			MemoryUsage:   rand.Intn(40) + 30,
			DiskUsage:     rand.Intn(20) + 40,
			IndexingSpeed: rand.Intn(50) + 25,
		},
		Trends: dto.Trends{
			DocumentsOverTime: overTime(7, 5, 1),
			QueriesOverTime:   overTime(7, 10, 5),
			FileTypes:         fileTypeBreakdown(docs),
		},
	}, nil
}

func popularTimes() []dto.HourCount {
	times := make([]dto.HourCount, 24)
	for i := range times {
		times[i] = dto.HourCount{Hour: i, Count: rand.Intn(10)}
	}
	return times
}

func overTime(days, spread, base int) []dto.DateCount {
	points := make([]dto.DateCount, days)
	for i := 0; i < days; i++ {
		points[i] = dto.DateCount{
			Date:  time.Now().AddDate(0, 0, -(days - 1 - i)).Format(time.RFC3339),
			Count: rand.Intn(spread) + base,
		}
	}
	return points
}

func fileTypeBreakdown(docs []*entity.Document) []dto.FileTypeCount {
	counts := map[string]int{}
	for _, doc := range docs {
		counts[bucketFileType(doc.FileType)]++
	}

	result := make([]dto.FileTypeCount, 0, len(counts))
	for fileType, count := range counts {
		percentage := 0
		if len(docs) > 0 {
			percentage = count * 100 / len(docs)
		}
		result = append(result, dto.FileTypeCount{
			Type:       fileType,
			Count:      count,
			Percentage: percentage,
		})
	}
	return result
}

func bucketFileType(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "pdf"):
		return "pdf"
	case strings.Contains(mimeType, "excel"):
		return "excel"
	case strings.Contains(mimeType, "powerpoint"):
		return "powerpoint"
	case strings.Contains(mimeType, "word"):
		return "word"
	default:
		return "other"
	}
}
