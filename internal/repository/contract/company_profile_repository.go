package contract

import (
	"context"

	"compliancebot-be/internal/entity"
	"compliancebot-be/internal/repository/specification"
)

type CompanyProfileRepository interface {
	Create(ctx context.Context, profile *entity.CompanyProfile) error
	Update(ctx context.Context, profile *entity.CompanyProfile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompanyProfile, error)
}
