package mapper

import (
	"time"

	"compliancebot-be/internal/entity"
	"compliancebot-be/internal/model"

	"gorm.io/gorm"
)

type DeadlineMapper struct{}

func NewDeadlineMapper() *DeadlineMapper {
	return &DeadlineMapper{}
}

func (m *DeadlineMapper) ToEntity(d *model.Deadline) *entity.Deadline {
	if d == nil {
		return nil
	}

	var deletedAt *time.Time
	if d.DeletedAt.Valid {
		t := d.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.Deadline{
		Id:          d.Id,
		UserId:      d.UserId,
		Title:       d.Title,
		Type:        d.Type,
		DueDate:     d.DueDate,
		IsCompleted: d.IsCompleted,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   d.DeletedAt.Valid,
	}
}

func (m *DeadlineMapper) ToModel(d *entity.Deadline) *model.Deadline {
	if d == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if d.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *d.DeletedAt, Valid: true}
	} else if d.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.Deadline{
		Id:          d.Id,
		UserId:      d.UserId,
		Title:       d.Title,
		Type:        d.Type,
		DueDate:     d.DueDate,
		IsCompleted: d.IsCompleted,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *DeadlineMapper) ToEntities(deadlines []*model.Deadline) []*entity.Deadline {
	entities := make([]*entity.Deadline, len(deadlines))
	for i, d := range deadlines {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
