package mapper

import (
	"testing"
	"time"

	"compliancebot-be/internal/entity"
	"compliancebot-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestComplianceMapperRoundTrip(t *testing.T) {
	m := NewComplianceMapper()

	deadline := time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC)
	row := &model.ComplianceItem{
		Id:        uuid.New(),
		UserId:    uuid.New(),
		Title:     "Registru de evidență a prelucrărilor",
		Category:  "gdpr",
		Status:    "in_progress",
		Deadline:  &deadline,
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now(),
	}

	e := m.ToEntity(row)
	require.NotNil(t, e)
	assert.Equal(t, row.Id, e.Id)
	assert.Equal(t, entity.ComplianceCategoryGdpr, e.Category)
	assert.Equal(t, entity.ComplianceStatusInProgress, e.Status)
	require.NotNil(t, e.UpdatedAt)
	assert.False(t, e.IsDeleted)

	back := m.ToModel(e)
	require.NotNil(t, back)
	assert.Equal(t, row.Id, back.Id)
	assert.Equal(t, row.Category, back.Category)
	assert.Equal(t, row.Status, back.Status)
	assert.Equal(t, row.Deadline, back.Deadline)
	assert.False(t, back.DeletedAt.Valid)
}

func TestComplianceMapperSoftDelete(t *testing.T) {
	m := NewComplianceMapper()

	row := &model.ComplianceItem{
		Id:        uuid.New(),
		Title:     "Politică de confidențialitate",
		Category:  "gdpr",
		Status:    "pending",
		DeletedAt: gorm.DeletedAt{Time: time.Now(), Valid: true},
	}

	e := m.ToEntity(row)
	require.NotNil(t, e)
	assert.True(t, e.IsDeleted)
	require.NotNil(t, e.DeletedAt)

	back := m.ToModel(e)
	assert.True(t, back.DeletedAt.Valid)
}

func TestComplianceMapperNilSafety(t *testing.T) {
	m := NewComplianceMapper()

	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))

	entities := m.ToEntities([]*model.ComplianceItem{nil, {Id: uuid.New()}})
	require.Len(t, entities, 2)
	assert.Nil(t, entities[0])
	assert.NotNil(t, entities[1])
}
