package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComplianceItem struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Category  string         `gorm:"type:varchar(50);not null;index"`
	Status    string         `gorm:"type:varchar(50);not null;default:'pending'"`
	Deadline  *time.Time     `gorm:"index"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ComplianceItem) TableName() string {
	return "compliance_items"
}
