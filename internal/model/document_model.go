package model

import (
	"time"

	"gorm.io/datatypes"
)

type Document struct {
	Id           uint   `gorm:"primaryKey;autoIncrement"`
	UserId       uint   `gorm:"not null;index"`
	Filename     string `gorm:"type:varchar(255);not null"`
	OriginalName string `gorm:"type:varchar(255);not null"`
	FileType     string `gorm:"type:varchar(255);not null"`
	FileSize     int64  `gorm:"not null"`
	FilePath     string `gorm:"type:text;not null"`
	IsShared     bool   `gorm:"default:false"`
	IsIndexed    bool   `gorm:"default:false"`
	IsProcessing bool   `gorm:"default:false"`
	Metadata     datatypes.JSON
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Document) TableName() string {
	return "documents"
}
