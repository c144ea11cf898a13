package model

import "time"

type ApprovalRequest struct {
	Id            uint    `gorm:"primaryKey;autoIncrement"`
	Email         string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName     string  `gorm:"type:varchar(255);not null"`
	LastName      string  `gorm:"type:varchar(255);not null"`
	MicrosoftId   string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	RequestReason *string `gorm:"type:text"`
	Status        string  `gorm:"type:varchar(50);not null;default:'pending'"`
	ReviewedBy    *uint
	ReviewedAt    *time.Time
	ReviewNotes   *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (ApprovalRequest) TableName() string {
	return "user_approval_requests"
}
