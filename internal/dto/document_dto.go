package dto

import (
	"encoding/json"
	"time"
)

type CreateDocumentRequest struct {
	Filename     string          `json:"filename" validate:"required"`
	OriginalName string          `json:"originalName" validate:"required"`
	FileType     string          `json:"fileType" validate:"required"`
	FileSize     int64           `json:"fileSize" validate:"gte=0"`
	FilePath     string          `json:"filePath"`
	IsShared     bool            `json:"isShared"`
	Metadata     json.RawMessage `json:"metadata"`
}

// UpdateDocumentRequest carries pointers so absent fields are left untouched.
type UpdateDocumentRequest struct {
	Filename     *string          `json:"filename"`
	OriginalName *string          `json:"originalName"`
	FileType     *string          `json:"fileType"`
	IsShared     *bool            `json:"isShared"`
	IsIndexed    *bool            `json:"isIndexed"`
	IsProcessing *bool            `json:"isProcessing"`
	Metadata     *json.RawMessage `json:"metadata"`
}

type UploadRequest struct {
	Filename string `json:"filename"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize" validate:"gte=0"`
}

type DocumentResponse struct {
	Id           uint            `json:"id"`
	UserId       uint            `json:"userId"`
	Filename     string          `json:"filename"`
	OriginalName string          `json:"originalName"`
	FileType     string          `json:"fileType"`
	FileSize     int64           `json:"fileSize"`
	FilePath     string          `json:"filePath"`
	IsShared     bool            `json:"isShared"`
	IsIndexed    bool            `json:"isIndexed"`
	IsProcessing bool            `json:"isProcessing"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type ExportResponse struct {
	User       UserResponse       `json:"user"`
	Documents  []DocumentResponse `json:"documents"`
	Messages   []MessageResponse  `json:"messages"`
	ExportDate time.Time          `json:"exportDate"`
}
