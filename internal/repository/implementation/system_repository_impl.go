package implementation

import (
	"context"

	"docintel-be/internal/entity"
	"docintel-be/internal/mapper"
	"docintel-be/internal/model"
	"docintel-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SystemStatusRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SystemMapper
}

func NewSystemStatusRepository(db *gorm.DB) contract.SystemStatusRepository {
	return &SystemStatusRepositoryImpl{
		db:     db,
		mapper: mapper.NewSystemMapper(),
	}
}

func (r *SystemStatusRepositoryImpl) Upsert(ctx context.Context, status *entity.SystemStatus) error {
	modelStatus := r.mapper.StatusToModel(status)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "component"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "message", "updated_at"}),
	}).Create(modelStatus).Error
	if err != nil {
		return err
	}
	*status = *r.mapper.StatusToEntity(modelStatus)
	return nil
}

func (r *SystemStatusRepositoryImpl) FindAll(ctx context.Context) ([]*entity.SystemStatus, error) {
	var modelStatuses []*model.SystemStatus
	if err := r.db.WithContext(ctx).Order("component ASC").Find(&modelStatuses).Error; err != nil {
		return nil, err
	}
	return r.mapper.StatusToEntities(modelStatuses), nil
}

type LlmServerStatusRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SystemMapper
}

func NewLlmServerStatusRepository(db *gorm.DB) contract.LlmServerStatusRepository {
	return &LlmServerStatusRepositoryImpl{
		db:     db,
		mapper: mapper.NewSystemMapper(),
	}
}

func (r *LlmServerStatusRepositoryImpl) Upsert(ctx context.Context, status *entity.LlmServerStatus) error {
	modelStatus := r.mapper.LlmStatusToModel(status)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "server_endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "last_ping", "version", "capabilities", "updated_at"}),
	}).Create(modelStatus).Error
	if err != nil {
		return err
	}
	*status = *r.mapper.LlmStatusToEntity(modelStatus)
	return nil
}

func (r *LlmServerStatusRepositoryImpl) FindAll(ctx context.Context) ([]*entity.LlmServerStatus, error) {
	var modelStatuses []*model.LlmServerStatus
	if err := r.db.WithContext(ctx).Order("server_endpoint ASC").Find(&modelStatuses).Error; err != nil {
		return nil, err
	}
	return r.mapper.LlmStatusToEntities(modelStatuses), nil
}
