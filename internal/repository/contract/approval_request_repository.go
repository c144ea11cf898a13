package contract

import (
	"context"

	"docintel-be/internal/entity"
	"docintel-be/internal/repository/specification"
)

type ApprovalRequestRepository interface {
	Create(ctx context.Context, req *entity.ApprovalRequest) error
	Update(ctx context.Context, req *entity.ApprovalRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ApprovalRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ApprovalRequest, error)
}
