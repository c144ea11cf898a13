package entity

import (
	"encoding/json"
	"time"
)

type FileSource string

const (
	FileSourceOneDrive   FileSource = "onedrive"
	FileSourceSharePoint FileSource = "sharepoint"
)

// MicrosoftFile caches remote file metadata listed from OneDrive/SharePoint.
// Upserted opportunistically whenever files are listed.
type MicrosoftFile struct {
	Id              uint
	UserId          uint
	MicrosoftFileId string
	FileName        string
	FilePath        string
	FileType        string
	Source          FileSource
	LastAccessed    time.Time
	IsIndexed       bool
	Metadata        json.RawMessage
	CreatedAt       time.Time
}
