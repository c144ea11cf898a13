package entity

import (
	"encoding/json"
	"time"
)

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

type Message struct {
	Id        uint
	UserId    uint
	Content   string
	Role      MessageRole
	Sources   json.RawMessage // referenced documents, nullable
	CreatedAt time.Time
}
