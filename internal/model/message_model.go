package model

import (
	"time"

	"gorm.io/datatypes"
)

type Message struct {
	Id        uint   `gorm:"primaryKey;autoIncrement"`
	UserId    uint   `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	Role      string `gorm:"type:varchar(50);not null"`
	Sources   datatypes.JSON
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (Message) TableName() string {
	return "messages"
}
