package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SavedDocument struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	DocumentType string         `gorm:"type:varchar(100);not null"`
	DocumentName string         `gorm:"type:varchar(255);not null"`
	FilePath     string         `gorm:"type:text;not null"`
	PageCount    int            `gorm:"not null;default:1"`
	Excerpt      string         `gorm:"type:text"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (SavedDocument) TableName() string {
	return "saved_documents"
}
