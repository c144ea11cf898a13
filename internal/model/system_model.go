package model

import (
	"time"

	"gorm.io/datatypes"
)

type SystemStatus struct {
	Id        uint    `gorm:"primaryKey;autoIncrement"`
	Component string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Status    string  `gorm:"type:varchar(50);not null"`
	Message   *string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (SystemStatus) TableName() string {
	return "system_status"
}

type LlmServerStatus struct {
	Id             uint    `gorm:"primaryKey;autoIncrement"`
	ServerEndpoint string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Status         string  `gorm:"type:varchar(50);not null"`
	LastPing       time.Time
	Version        *string `gorm:"type:varchar(50)"`
	Capabilities   datatypes.JSON
	UpdatedAt      time.Time
}

func (LlmServerStatus) TableName() string {
	return "llm_server_status"
}
