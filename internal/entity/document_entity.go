package entity

import (
	"encoding/json"
	"time"
)

type Document struct {
	Id           uint
	UserId       uint
	Filename     string
	OriginalName string
	FileType     string
	FileSize     int64 // bytes
	FilePath     string
	IsShared     bool
	IsIndexed    bool
	IsProcessing bool
	Metadata     json.RawMessage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
