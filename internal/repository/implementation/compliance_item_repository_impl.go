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

type ComplianceItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ComplianceMapper
}

func NewComplianceItemRepository(db *gorm.DB) contract.ComplianceItemRepository {
	return &ComplianceItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewComplianceMapper(),
	}
}

func (r *ComplianceItemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ComplianceItemRepositoryImpl) Create(ctx context.Context, item *entity.ComplianceItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComplianceItemRepositoryImpl) Update(ctx context.Context, item *entity.ComplianceItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComplianceItemRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ComplianceItem{}, id).Error
}

func (r *ComplianceItemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ComplianceItem, error) {
	var m model.ComplianceItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ComplianceItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ComplianceItem, error) {
	var models []*model.ComplianceItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ComplianceItemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ComplianceItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
