package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavedDocument is the metadata row of a generated PDF kept on disk.
type SavedDocument struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	DocumentType string
	DocumentName string
	FilePath     string
	PageCount    int
	Excerpt      string // first lines of the text transcript
	CreatedAt    time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}
