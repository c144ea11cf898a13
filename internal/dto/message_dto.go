package dto

import (
	"encoding/json"
	"time"
)

type CreateMessageRequest struct {
	Content string          `json:"content" validate:"required"`
	Role    string          `json:"role" validate:"required,oneof=user assistant"`
	Sources json.RawMessage `json:"sources"`
}

type MessageResponse struct {
	Id        uint            `json:"id"`
	UserId    uint            `json:"userId"`
	Content   string          `json:"content"`
	Role      string          `json:"role"`
	Sources   json.RawMessage `json:"sources,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}
