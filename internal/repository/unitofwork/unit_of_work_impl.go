package unitofwork

import (
	"context"
	"fmt"

	"compliancebot-be/internal/repository/contract"
	"compliancebot-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // The active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) CompanyProfileRepository() contract.CompanyProfileRepository {
	return implementation.NewCompanyProfileRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ComplianceItemRepository() contract.ComplianceItemRepository {
	return implementation.NewComplianceItemRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DeadlineRepository() contract.DeadlineRepository {
	return implementation.NewDeadlineRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SavedDocumentRepository() contract.SavedDocumentRepository {
	return implementation.NewSavedDocumentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatSessionRepository() contract.ChatSessionRepository {
	return implementation.NewChatSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatMessageRepository() contract.ChatMessageRepository {
	return implementation.NewChatMessageRepository(u.getDB())
}
