package entity

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// DefaultStorageLimitMB is the per-user quota assigned on account creation (2.5GB).
const DefaultStorageLimitMB = 2500

type User struct {
	Id           uint
	Username     string
	Email        string
	PasswordHash *string // nil for Microsoft Graph accounts
	Role         UserRole
	FirstName    string
	LastName     string

	StorageUsedMB  int
	StorageLimitMB int

	MicrosoftId           *string
	MicrosoftAccessToken  *string
	MicrosoftRefreshToken *string

	IsApproved bool
	ApprovedBy *uint
	ApprovedAt *time.Time

	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
