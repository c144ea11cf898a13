package contract

import (
	"context"
	"time"

	"docintel-be/internal/entity"
	"docintel-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
	UpdateMicrosoftTokens(ctx context.Context, id uint, accessToken, refreshToken string) error
	AddStorageUsed(ctx context.Context, id uint, deltaMB int) error
}
