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

type DocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewDocumentRepository(db *gorm.DB) contract.DocumentRepository {
	return &DocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *DocumentRepositoryImpl) Create(ctx context.Context, doc *entity.Document) error {
	modelDoc := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(modelDoc).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(modelDoc)
	return nil
}

func (r *DocumentRepositoryImpl) Update(ctx context.Context, doc *entity.Document) error {
	modelDoc := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Save(modelDoc).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(modelDoc)
	return nil
}

func (r *DocumentRepositoryImpl) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Document{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error) {
	var modelDoc model.Document
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelDoc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelDoc), nil
}

func (r *DocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error) {
	var modelDocs []*model.Document
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelDocs).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelDocs), nil
}

func (r *DocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Document{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
