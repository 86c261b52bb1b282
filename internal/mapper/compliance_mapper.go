package mapper

import (
	"time"

	"compliancebot-be/internal/entity"
	"compliancebot-be/internal/model"

	"gorm.io/gorm"
)

type ComplianceMapper struct{}

func NewComplianceMapper() *ComplianceMapper {
	return &ComplianceMapper{}
}

func (m *ComplianceMapper) ToEntity(i *model.ComplianceItem) *entity.ComplianceItem {
	if i == nil {
		return nil
	}

	var deletedAt *time.Time
	if i.DeletedAt.Valid {
		t := i.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	return &entity.ComplianceItem{
		Id:        i.Id,
		UserId:    i.UserId,
		Title:     i.Title,
		Category:  entity.ComplianceCategory(i.Category),
		Status:    entity.ComplianceStatus(i.Status),
		Deadline:  i.Deadline,
		CreatedAt: i.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: i.DeletedAt.Valid,
	}
}

func (m *ComplianceMapper) ToModel(i *entity.ComplianceItem) *model.ComplianceItem {
	if i == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if i.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *i.DeletedAt, Valid: true}
	} else if i.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	return &model.ComplianceItem{
		Id:        i.Id,
		UserId:    i.UserId,
		Title:     i.Title,
		Category:  string(i.Category),
		Status:    string(i.Status),
		Deadline:  i.Deadline,
		CreatedAt: i.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *ComplianceMapper) ToEntities(items []*model.ComplianceItem) []*entity.ComplianceItem {
	entities := make([]*entity.ComplianceItem, len(items))
	for i, item := range items {
		entities[i] = m.ToEntity(item)
	}
	return entities
}
