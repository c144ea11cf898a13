package model

import "time"

type User struct {
	Id           uint    `gorm:"primaryKey;autoIncrement"`
	Username     string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash *string `gorm:"type:varchar(255)"`
	Role         string  `gorm:"type:varchar(50);not null;default:'user'"`
	FirstName    string  `gorm:"type:varchar(255);not null"`
	LastName     string  `gorm:"type:varchar(255);not null"`

	StorageUsedMB  int `gorm:"not null;default:0"`
	StorageLimitMB int `gorm:"not null;default:2500"`

	MicrosoftId           *string `gorm:"type:varchar(255);uniqueIndex"`
	MicrosoftAccessToken  *string `gorm:"type:text"`
	MicrosoftRefreshToken *string `gorm:"type:text"`

	IsApproved bool `gorm:"not null;default:false"`
	ApprovedBy *uint
	ApprovedAt *time.Time

	LastLoginAt *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
