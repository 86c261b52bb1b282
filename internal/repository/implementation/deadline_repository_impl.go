package implementation

import (
	"context"
	"errors"

	"compliancebot-be/internal/entity"
	"compliancebot-be/internal/mapper"
	"compliancebot-be/internal/model"
	"compliancebot-be/internal/repository/contract"
	"compliancebot-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeadlineRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DeadlineMapper
}

func NewDeadlineRepository(db *gorm.DB) contract.DeadlineRepository {
	return &DeadlineRepositoryImpl{
		db:     db,
		mapper: mapper.NewDeadlineMapper(),
	}
}

func (r *DeadlineRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DeadlineRepositoryImpl) Create(ctx context.Context, deadline *entity.Deadline) error {
	m := r.mapper.ToModel(deadline)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*deadline = *r.mapper.ToEntity(m)
	return nil
}

func (r *DeadlineRepositoryImpl) Update(ctx context.Context, deadline *entity.Deadline) error {
	m := r.mapper.ToModel(deadline)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*deadline = *r.mapper.ToEntity(m)
	return nil
}

func (r *DeadlineRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Deadline{}, id).Error
}

func (r *DeadlineRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Deadline, error) {
	var m model.Deadline
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DeadlineRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Deadline, error) {
	var models []*model.Deadline
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
