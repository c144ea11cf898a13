package memory

import (
	"context"
	"time"

	"docintel-be/internal/entity"
)

type sessionRepository struct {
	store *Store
}

func cloneSession(s *entity.Session) *entity.Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	session.Id = r.store.nextSessionId
	r.store.nextSessionId++
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	r.store.sessions[session.TokenHash] = cloneSession(session)
	return nil
}

func (r *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return cloneSession(r.store.sessions[tokenHash]), nil
}

func (r *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.sessions, tokenHash)
	return nil
}
