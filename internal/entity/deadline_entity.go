package entity

import (
	"time"

	"github.com/google/uuid"
)

type Deadline struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	Type        string // "fiscal", "gdpr", "labor", "other"
	DueDate     time.Time
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
