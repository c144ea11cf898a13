package mapper

import (
	"encoding/json"

	"docintel-be/internal/entity"
	"docintel-be/internal/model"

	"gorm.io/datatypes"
)

type MicrosoftFileMapper struct{}

func NewMicrosoftFileMapper() *MicrosoftFileMapper {
	return &MicrosoftFileMapper{}
}

func (m *MicrosoftFileMapper) ToEntity(f *model.MicrosoftFile) *entity.MicrosoftFile {
	if f == nil {
		return nil
	}
	return &entity.MicrosoftFile{
		Id:              f.Id,
		UserId:          f.UserId,
		MicrosoftFileId: f.MicrosoftFileId,
		FileName:        f.FileName,
		FilePath:        f.FilePath,
		FileType:        f.FileType,
		Source:          entity.FileSource(f.Source),
		LastAccessed:    f.LastAccessed,
		IsIndexed:       f.IsIndexed,
		Metadata:        json.RawMessage(f.Metadata),
		CreatedAt:       f.CreatedAt,
	}
}

func (m *MicrosoftFileMapper) ToModel(f *entity.MicrosoftFile) *model.MicrosoftFile {
	if f == nil {
		return nil
	}
	return &model.MicrosoftFile{
		Id:              f.Id,
		UserId:          f.UserId,
		MicrosoftFileId: f.MicrosoftFileId,
		FileName:        f.FileName,
		FilePath:        f.FilePath,
		FileType:        f.FileType,
		Source:          string(f.Source),
		LastAccessed:    f.LastAccessed,
		IsIndexed:       f.IsIndexed,
		Metadata:        datatypes.JSON(f.Metadata),
		CreatedAt:       f.CreatedAt,
	}
}

func (m *MicrosoftFileMapper) ToEntities(files []*model.MicrosoftFile) []*entity.MicrosoftFile {
	entities := make([]*entity.MicrosoftFile, len(files))
	for i, f := range files {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
