package implementation

import (
	"context"
	"errors"

	"docintel-be/internal/entity"
	"docintel-be/internal/mapper"
	"docintel-be/internal/model"
	"docintel-be/internal/repository/contract"
	"docintel-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ApprovalRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ApprovalMapper
}

func NewApprovalRequestRepository(db *gorm.DB) contract.ApprovalRequestRepository {
	return &ApprovalRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewApprovalMapper(),
	}
}

func (r *ApprovalRequestRepositoryImpl) Create(ctx context.Context, req *entity.ApprovalRequest) error {
	modelReq := r.mapper.ToModel(req)
	if err := r.db.WithContext(ctx).Create(modelReq).Error; err != nil {
		return err
	}
	*req = *r.mapper.ToEntity(modelReq)
	return nil
}

func (r *ApprovalRequestRepositoryImpl) Update(ctx context.Context, req *entity.ApprovalRequest) error {
	modelReq := r.mapper.ToModel(req)
	if err := r.db.WithContext(ctx).Save(modelReq).Error; err != nil {
		return err
	}
	*req = *r.mapper.ToEntity(modelReq)
	return nil
}

func (r *ApprovalRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ApprovalRequest, error) {
	var modelReq model.ApprovalRequest
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelReq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelReq), nil
}

func (r *ApprovalRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ApprovalRequest, error) {
	var modelReqs []*model.ApprovalRequest
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelReqs).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelReqs), nil
}
