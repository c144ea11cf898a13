package dto

// DocumentIndexingMessage schedules the simulated processing flip for an
// uploaded document.
type DocumentIndexingMessage struct {
	DocumentId uint `json:"document_id"`
}

// ChatReplyMessage schedules the delayed assistant reply for a user message.
type ChatReplyMessage struct {
	UserId uint `json:"user_id"`
}
