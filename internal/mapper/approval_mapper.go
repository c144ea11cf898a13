package mapper

import (
	"docintel-be/internal/entity"
	"docintel-be/internal/model"
)

type ApprovalMapper struct{}

func NewApprovalMapper() *ApprovalMapper {
	return &ApprovalMapper{}
}

func (m *ApprovalMapper) ToEntity(r *model.ApprovalRequest) *entity.ApprovalRequest {
	if r == nil {
		return nil
	}
	return &entity.ApprovalRequest{
		Id:            r.Id,
		Email:         r.Email,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		MicrosoftId:   r.MicrosoftId,
		RequestReason: r.RequestReason,
		Status:        entity.ApprovalStatus(r.Status),
		ReviewedBy:    r.ReviewedBy,
		ReviewedAt:    r.ReviewedAt,
		ReviewNotes:   r.ReviewNotes,
		CreatedAt:     r.CreatedAt,
	}
}

func (m *ApprovalMapper) ToModel(r *entity.ApprovalRequest) *model.ApprovalRequest {
	if r == nil {
		return nil
	}
	return &model.ApprovalRequest{
		Id:            r.Id,
		Email:         r.Email,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		MicrosoftId:   r.MicrosoftId,
		RequestReason: r.RequestReason,
		Status:        string(r.Status),
		ReviewedBy:    r.ReviewedBy,
		ReviewedAt:    r.ReviewedAt,
		ReviewNotes:   r.ReviewNotes,
		CreatedAt:     r.CreatedAt,
	}
}

func (m *ApprovalMapper) ToEntities(reqs []*model.ApprovalRequest) []*entity.ApprovalRequest {
	entities := make([]*entity.ApprovalRequest, len(reqs))
	for i, r := range reqs {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
