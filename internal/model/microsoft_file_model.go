package model

import (
	"time"

	"gorm.io/datatypes"
)

type MicrosoftFile struct {
	Id              uint   `gorm:"primaryKey;autoIncrement"`
	UserId          uint   `gorm:"not null;index:idx_ms_files_user_file,unique"`
	MicrosoftFileId string `gorm:"type:varchar(255);not null;index:idx_ms_files_user_file,unique"`
	FileName        string `gorm:"type:varchar(255);not null"`
	FilePath        string `gorm:"type:text;not null"`
	FileType        string `gorm:"type:varchar(255);not null"`
	Source          string `gorm:"type:varchar(50);not null"`
	LastAccessed    time.Time
	IsIndexed       bool `gorm:"not null;default:false"`
	Metadata        datatypes.JSON
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (MicrosoftFile) TableName() string {
	return "microsoft_files"
}
