package contract

import (
	"context"

	"compliancebot-be/internal/entity"
	"compliancebot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ComplianceItemRepository interface {
	Create(ctx context.Context, item *entity.ComplianceItem) error
	Update(ctx context.Context, item *entity.ComplianceItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ComplianceItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ComplianceItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
