package mapper

import (
	"docintel-be/internal/entity"
	"docintel-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                    u.Id,
		Username:              u.Username,
		Email:                 u.Email,
		PasswordHash:          u.PasswordHash,
		Role:                  entity.UserRole(u.Role),
		FirstName:             u.FirstName,
		LastName:              u.LastName,
		StorageUsedMB:         u.StorageUsedMB,
		StorageLimitMB:        u.StorageLimitMB,
		MicrosoftId:           u.MicrosoftId,
		MicrosoftAccessToken:  u.MicrosoftAccessToken,
		MicrosoftRefreshToken: u.MicrosoftRefreshToken,
		IsApproved:            u.IsApproved,
		ApprovedBy:            u.ApprovedBy,
		ApprovedAt:            u.ApprovedAt,
		LastLoginAt:           u.LastLoginAt,
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                    u.Id,
		Username:              u.Username,
		Email:                 u.Email,
		PasswordHash:          u.PasswordHash,
		Role:                  string(u.Role),
		FirstName:             u.FirstName,
		LastName:              u.LastName,
		StorageUsedMB:         u.StorageUsedMB,
		StorageLimitMB:        u.StorageLimitMB,
		MicrosoftId:           u.MicrosoftId,
		MicrosoftAccessToken:  u.MicrosoftAccessToken,
		MicrosoftRefreshToken: u.MicrosoftRefreshToken,
		IsApproved:            u.IsApproved,
		ApprovedBy:            u.ApprovedBy,
		ApprovedAt:            u.ApprovedAt,
		LastLoginAt:           u.LastLoginAt,
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
