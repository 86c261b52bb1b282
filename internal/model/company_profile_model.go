package model

import (
	"time"

	"github.com/google/uuid"
)

type CompanyProfile struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CompanyName        string    `gorm:"type:varchar(255)"`
	CUI                string    `gorm:"column:cui;type:varchar(50)"`
	RegistrationNumber string    `gorm:"type:varchar(50)"`
	Address            string    `gorm:"type:text"`
	Employees          string    `gorm:"type:varchar(50)"`
	Representative     string    `gorm:"type:varchar(255)"`
	Email              string    `gorm:"type:varchar(255)"`
	Phone              string    `gorm:"type:varchar(50)"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (CompanyProfile) TableName() string {
	return "company_profiles"
}
