package contract

import (
	"context"

	"docintel-be/internal/entity"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)
	// DeleteByTokenHash is idempotent and never errors on a missing token.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
}
