package dto

import (
	"encoding/json"
	"time"
)

type SystemStatusResponse struct {
	Id        uint      `json:"id"`
	Component string    `json:"component"`
	Status    string    `json:"status"`
	Message   *string   `json:"message,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LlmServerPingRequest struct {
	ServerEndpoint string          `json:"serverEndpoint" validate:"required"`
	Version        *string         `json:"version"`
	Capabilities   json.RawMessage `json:"capabilities"`
}

type LlmServerStatusResponse struct {
	Id             uint            `json:"id"`
	ServerEndpoint string          `json:"serverEndpoint"`
	Status         string          `json:"status"`
	LastPing       time.Time       `json:"lastPing"`
	Version        *string         `json:"version,omitempty"`
	Capabilities   json.RawMessage `json:"capabilities,omitempty"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
