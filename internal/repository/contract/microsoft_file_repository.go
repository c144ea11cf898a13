package contract

import (
	"context"
	"time"

	"docintel-be/internal/entity"
	"docintel-be/internal/repository/specification"
)

type MicrosoftFileRepository interface {
	// Upsert is keyed by (user_id, microsoft_file_id); listing the same remote
	// file twice refreshes its cached metadata instead of duplicating it.
	Upsert(ctx context.Context, file *entity.MicrosoftFile) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MicrosoftFile, error)
	TouchLastAccessed(ctx context.Context, id uint, at time.Time) error
}
