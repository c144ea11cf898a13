package dto

import (
	"time"

	"docintel-be/internal/entity"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	Id           uint       `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Role         string     `json:"role"`
	StorageUsed  int        `json:"storageUsed"`
	StorageLimit int        `json:"storageLimit"`
	MicrosoftId  *string    `json:"microsoftId,omitempty"`
	IsApproved   bool       `json:"isApproved"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// NewUserResponse strips the password hash and internal token fields.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		Id:           u.Id,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         string(u.Role),
		StorageUsed:  u.StorageUsedMB,
		StorageLimit: u.StorageLimitMB,
		MicrosoftId:  u.MicrosoftId,
		IsApproved:   u.IsApproved,
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
	}
}
