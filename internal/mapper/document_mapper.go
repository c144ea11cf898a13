package mapper

import (
	"encoding/json"

	"docintel-be/internal/entity"
	"docintel-be/internal/model"

	"gorm.io/datatypes"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}
	return &entity.Document{
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
		Metadata:     json.RawMessage(d.Metadata),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}
	return &model.Document{
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
		Metadata:     datatypes.JSON(d.Metadata),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (m *DocumentMapper) ToEntities(docs []*model.Document) []*entity.Document {
	entities := make([]*entity.Document, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
