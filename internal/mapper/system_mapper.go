package mapper

import (
	"encoding/json"

	"docintel-be/internal/entity"
	"docintel-be/internal/model"

	"gorm.io/datatypes"
)

type SystemMapper struct{}

func NewSystemMapper() *SystemMapper {
	return &SystemMapper{}
}

func (m *SystemMapper) StatusToEntity(s *model.SystemStatus) *entity.SystemStatus {
	if s == nil {
		return nil
	}
	return &entity.SystemStatus{
		Id:        s.Id,
		Component: s.Component,
		Status:    entity.ComponentStatus(s.Status),
		Message:   s.Message,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *SystemMapper) StatusToModel(s *entity.SystemStatus) *model.SystemStatus {
	if s == nil {
		return nil
	}
	return &model.SystemStatus{
		Id:        s.Id,
		Component: s.Component,
		Status:    string(s.Status),
		Message:   s.Message,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *SystemMapper) StatusToEntities(models []*model.SystemStatus) []*entity.SystemStatus {
	entities := make([]*entity.SystemStatus, len(models))
	for i, s := range models {
		entities[i] = m.StatusToEntity(s)
	}
	return entities
}

func (m *SystemMapper) LlmStatusToEntity(s *model.LlmServerStatus) *entity.LlmServerStatus {
	if s == nil {
		return nil
	}
	return &entity.LlmServerStatus{
		Id:             s.Id,
		ServerEndpoint: s.ServerEndpoint,
		Status:         entity.ComponentStatus(s.Status),
		LastPing:       s.LastPing,
		Version:        s.Version,
		Capabilities:   json.RawMessage(s.Capabilities),
		UpdatedAt:      s.UpdatedAt,
	}
}

func (m *SystemMapper) LlmStatusToModel(s *entity.LlmServerStatus) *model.LlmServerStatus {
	if s == nil {
		return nil
	}
	return &model.LlmServerStatus{
		Id:             s.Id,
		ServerEndpoint: s.ServerEndpoint,
		Status:         string(s.Status),
		LastPing:       s.LastPing,
		Version:        s.Version,
		Capabilities:   datatypes.JSON(s.Capabilities),
		UpdatedAt:      s.UpdatedAt,
	}
}

func (m *SystemMapper) LlmStatusToEntities(models []*model.LlmServerStatus) []*entity.LlmServerStatus {
	entities := make([]*entity.LlmServerStatus, len(models))
	for i, s := range models {
		entities[i] = m.LlmStatusToEntity(s)
	}
	return entities
}
