package contract

import (
	"context"

	"compliancebot-be/internal/entity"
	"compliancebot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DeadlineRepository interface {
	Create(ctx context.Context, deadline *entity.Deadline) error
	Update(ctx context.Context, deadline *entity.Deadline) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Deadline, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Deadline, error)
}
