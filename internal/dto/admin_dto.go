package dto

import "time"

type ApprovalRequestResponse struct {
	Id            uint       `json:"id"`
	Email         string     `json:"email"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	MicrosoftId   string     `json:"microsoftId"`
	RequestReason *string    `json:"requestReason,omitempty"`
	Status        string     `json:"status"`
	ReviewedBy    *uint      `json:"reviewedBy,omitempty"`
	ReviewedAt    *time.Time `json:"reviewedAt,omitempty"`
	ReviewNotes   *string    `json:"reviewNotes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type ApprovalDecisionRequest struct {
	Decision    string  `json:"decision" validate:"required,oneof=approved rejected"`
	ReviewNotes *string `json:"reviewNotes"`
}

type ApprovalDecisionResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user,omitempty"`
}
