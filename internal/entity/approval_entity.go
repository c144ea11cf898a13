package entity

import "time"

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// ApprovalRequest gates account creation for an externally authenticated
// identity. Terminal once decided.
type ApprovalRequest struct {
	Id            uint
	Email         string
	FirstName     string
	LastName      string
	MicrosoftId   string
	RequestReason *string
	Status        ApprovalStatus
	ReviewedBy    *uint
	ReviewedAt    *time.Time
	ReviewNotes   *string
	CreatedAt     time.Time
}
