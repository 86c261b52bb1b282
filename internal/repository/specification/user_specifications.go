package specification

import (
	"gorm.io/gorm"

	"github.com/google/uuid"
)

// UserOwnedBy scopes a query to the rows owned by one user. Every
// user-facing aggregate carries a user_id column, so this applies across
// profiles, compliance items, deadlines, documents and chat sessions.
type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
