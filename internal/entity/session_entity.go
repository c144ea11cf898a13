package entity

import "time"

// Session maps an opaque bearer token to a user. Only the SHA-256 hash of the
// token is stored; the raw value is handed to the client once at creation.
type Session struct {
	Id        uint
	UserId    uint
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
