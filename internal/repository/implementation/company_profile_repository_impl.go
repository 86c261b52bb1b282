package implementation

import (
	"context"
	"errors"

	"compliancebot-be/internal/entity"
	"compliancebot-be/internal/mapper"
	"compliancebot-be/internal/model"
	"compliancebot-be/internal/repository/contract"
	"compliancebot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CompanyProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CompanyProfileMapper
}

func NewCompanyProfileRepository(db *gorm.DB) contract.CompanyProfileRepository {
	return &CompanyProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewCompanyProfileMapper(),
	}
}

func (r *CompanyProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CompanyProfileRepositoryImpl) Create(ctx context.Context, profile *entity.CompanyProfile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *CompanyProfileRepositoryImpl) Update(ctx context.Context, profile *entity.CompanyProfile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *CompanyProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompanyProfile, error) {
	var m model.CompanyProfile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
