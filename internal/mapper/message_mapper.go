package mapper

import (
	"encoding/json"

	"docintel-be/internal/entity"
	"docintel-be/internal/model"

	"gorm.io/datatypes"
)

type MessageMapper struct{}

func NewMessageMapper() *MessageMapper {
	return &MessageMapper{}
}

func (m *MessageMapper) ToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	return &entity.Message{
		Id:        msg.Id,
		UserId:    msg.UserId,
		Content:   msg.Content,
		Role:      entity.MessageRole(msg.Role),
		Sources:   json.RawMessage(msg.Sources),
		CreatedAt: msg.CreatedAt,
	}
}

func (m *MessageMapper) ToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:        msg.Id,
		UserId:    msg.UserId,
		Content:   msg.Content,
		Role:      string(msg.Role),
		Sources:   datatypes.JSON(msg.Sources),
		CreatedAt: msg.CreatedAt,
	}
}

func (m *MessageMapper) ToEntities(msgs []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.ToEntity(msg)
	}
	return entities
}
