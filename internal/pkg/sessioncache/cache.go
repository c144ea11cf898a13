// Package sessioncache keeps a hot lookaside of session token hashes so
// per-request auth does not always hit the database. The cache is advisory:
// a miss falls through to the session repository.
package sessioncache

import (
	"context"
	"time"
)

// CachedSession is the subset of session state worth keeping hot.
type CachedSession struct {
	UserId    uint      `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Cache interface {
	Set(ctx context.Context, tokenHash string, session CachedSession, ttl time.Duration) error
	// Get reports found=false on a miss; errors are reserved for backend failures.
	Get(ctx context.Context, tokenHash string) (CachedSession, bool, error)
	Delete(ctx context.Context, tokenHash string) error
}
