package unitofwork

import (
	"context"

	"compliancebot-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CompanyProfileRepository() contract.CompanyProfileRepository
	ComplianceItemRepository() contract.ComplianceItemRepository
	DeadlineRepository() contract.DeadlineRepository
	SavedDocumentRepository() contract.SavedDocumentRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
