package service

import (
	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
)

// Entity → response converters shared across services. The password hash is
// dropped here so no handler can serialize it by accident.

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.NewUserResponse(u)
}

func toDocumentResponse(d *entity.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		Id:           d.Id,
		UserId:       d.UserId,
		Filename:     d.Filename,
		OriginalName: d.OriginalName,
		FileType:     d.FileType,
		FileSize:     d.FileSize,
		FilePath:     d.FilePath,
		IsShared:     d.IsShared,
		IsIndexed:    d.IsIndexed,
		IsProcessing: d.IsProcessing,
		Metadata:     d.Metadata,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func toDocumentResponses(docs []*entity.Document) []dto.DocumentResponse {
	result := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		result = append(result, toDocumentResponse(d))
	}
	return result
}

func toMessageResponse(m *entity.Message) dto.MessageResponse {
	return dto.MessageResponse{
		Id:        m.Id,
		UserId:    m.UserId,
		Content:   m.Content,
		Role:      string(m.Role),
		Sources:   m.Sources,
		CreatedAt: m.CreatedAt,
	}
}

func toMessageResponses(msgs []*entity.Message) []dto.MessageResponse {
	result := make([]dto.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		result = append(result, toMessageResponse(m))
	}
	return result
}

func toSystemStatusResponse(s *entity.SystemStatus) dto.SystemStatusResponse {
	return dto.SystemStatusResponse{
		Id:        s.Id,
		Component: s.Component,
		Status:    string(s.Status),
		Message:   s.Message,
		UpdatedAt: s.UpdatedAt,
	}
}

func toLlmServerStatusResponse(s *entity.LlmServerStatus) dto.LlmServerStatusResponse {
	return dto.LlmServerStatusResponse{
		Id:             s.Id,
		ServerEndpoint: s.ServerEndpoint,
		Status:         string(s.Status),
		LastPing:       s.LastPing,
		Version:        s.Version,
		Capabilities:   s.Capabilities,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toApprovalRequestResponse(r *entity.ApprovalRequest) dto.ApprovalRequestResponse {
	return dto.ApprovalRequestResponse{
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
