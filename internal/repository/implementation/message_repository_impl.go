package implementation

import (
	"context"

	"docintel-be/internal/entity"
	"docintel-be/internal/mapper"
	"docintel-be/internal/model"
	"docintel-be/internal/repository/contract"
	"docintel-be/internal/repository/specification"

	"gorm.io/gorm"
)

type MessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MessageMapper
}

func NewMessageRepository(db *gorm.DB) contract.MessageRepository {
	return &MessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewMessageMapper(),
	}
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, msg *entity.Message) error {
	modelMsg := r.mapper.ToModel(msg)
	if err := r.db.WithContext(ctx).Create(modelMsg).Error; err != nil {
		return err
	}
	*msg = *r.mapper.ToEntity(modelMsg)
	return nil
}

func (r *MessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var modelMsgs []*model.Message
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelMsgs).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelMsgs), nil
}

func (r *MessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Message{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
