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

type SavedDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SavedDocumentMapper
}

func NewSavedDocumentRepository(db *gorm.DB) contract.SavedDocumentRepository {
	return &SavedDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewSavedDocumentMapper(),
	}
}

func (r *SavedDocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SavedDocumentRepositoryImpl) Create(ctx context.Context, doc *entity.SavedDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *SavedDocumentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SavedDocument{}, id).Error
}

func (r *SavedDocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedDocument, error) {
	var m model.SavedDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SavedDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedDocument, error) {
	var models []*model.SavedDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
