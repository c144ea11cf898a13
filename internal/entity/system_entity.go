package entity

import (
	"encoding/json"
	"time"
)

type ComponentStatus string

const (
	ComponentStatusOnline    ComponentStatus = "online"
	ComponentStatusOffline   ComponentStatus = "offline"
	ComponentStatusScheduled ComponentStatus = "scheduled"
	ComponentStatusError     ComponentStatus = "error"
)

// SystemStatus is keyed by component name; writes upsert in place.
type SystemStatus struct {
	Id        uint
	Component string
	Status    ComponentStatus
	Message   *string
	UpdatedAt time.Time
}

// LlmServerStatus tracks the most recent self-report of a remote inference
// server. One current row per endpoint (upsert, not append).
type LlmServerStatus struct {
	Id             uint
	ServerEndpoint string
	Status         ComponentStatus
	LastPing       time.Time
	Version        *string
	Capabilities   json.RawMessage
	UpdatedAt      time.Time
}
