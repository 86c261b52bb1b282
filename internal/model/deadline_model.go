package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Deadline struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Type        string         `gorm:"type:varchar(50);not null;default:'other'"`
	DueDate     time.Time      `gorm:"not null;index"`
	IsCompleted bool           `gorm:"not null;default:false"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Deadline) TableName() string {
	return "deadlines"
}
