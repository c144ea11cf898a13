package contract

import (
	"context"

	"docintel-be/internal/entity"
)

type SystemStatusRepository interface {
	// Upsert writes the status keyed by component name, overwriting
	// status/message/timestamp in place when the component already exists.
	Upsert(ctx context.Context, status *entity.SystemStatus) error
	FindAll(ctx context.Context) ([]*entity.SystemStatus, error)
}

type LlmServerStatusRepository interface {
	// Upsert keeps a single current row per server endpoint.
	Upsert(ctx context.Context, status *entity.LlmServerStatus) error
	FindAll(ctx context.Context) ([]*entity.LlmServerStatus, error)
}
