package implementation

import (
	"context"
	"time"

	"docintel-be/internal/entity"
	"docintel-be/internal/mapper"
	"docintel-be/internal/model"
	"docintel-be/internal/repository/contract"
	"docintel-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MicrosoftFileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MicrosoftFileMapper
}

func NewMicrosoftFileRepository(db *gorm.DB) contract.MicrosoftFileRepository {
	return &MicrosoftFileRepositoryImpl{
		db:     db,
		mapper: mapper.NewMicrosoftFileMapper(),
	}
}

func (r *MicrosoftFileRepositoryImpl) Upsert(ctx context.Context, file *entity.MicrosoftFile) error {
	modelFile := r.mapper.ToModel(file)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "microsoft_file_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"file_name", "file_path", "file_type", "source", "metadata"}),
	}).Create(modelFile).Error
	if err != nil {
		return err
	}
	*file = *r.mapper.ToEntity(modelFile)
	return nil
}

func (r *MicrosoftFileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MicrosoftFile, error) {
	var modelFiles []*model.MicrosoftFile
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelFiles).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelFiles), nil
}

func (r *MicrosoftFileRepositoryImpl) TouchLastAccessed(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.MicrosoftFile{}).Where("id = ?", id).
		Update("last_accessed", at).Error
}
