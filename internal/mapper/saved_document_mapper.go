package mapper

import (
	"time"

	"compliancebot-be/internal/entity"
	"compliancebot-be/internal/model"

	"gorm.io/gorm"
)

type SavedDocumentMapper struct{}

func NewSavedDocumentMapper() *SavedDocumentMapper {
	return &SavedDocumentMapper{}
}

func (m *SavedDocumentMapper) ToEntity(d *model.SavedDocument) *entity.SavedDocument {
	if d == nil {
		return nil
	}

	var deletedAt *time.Time
	if d.DeletedAt.Valid {
		t := d.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.SavedDocument{
		Id:           d.Id,
		UserId:       d.UserId,
		DocumentType: d.DocumentType,
		DocumentName: d.DocumentName,
		FilePath:     d.FilePath,
		PageCount:    d.PageCount,
		Excerpt:      d.Excerpt,
		CreatedAt:    d.CreatedAt,
		DeletedAt:    deletedAt,
		IsDeleted:    d.DeletedAt.Valid,
	}
}

func (m *SavedDocumentMapper) ToModel(d *entity.SavedDocument) *model.SavedDocument {
	if d == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if d.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *d.DeletedAt, Valid: true}
	} else if d.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	return &model.SavedDocument{
		Id:           d.Id,
		UserId:       d.UserId,
		DocumentType: d.DocumentType,
		DocumentName: d.DocumentName,
		FilePath:     d.FilePath,
		PageCount:    d.PageCount,
		Excerpt:      d.Excerpt,
		CreatedAt:    d.CreatedAt,
		DeletedAt:    deletedAt,
	}
}

func (m *SavedDocumentMapper) ToEntities(docs []*model.SavedDocument) []*entity.SavedDocument {
	entities := make([]*entity.SavedDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
