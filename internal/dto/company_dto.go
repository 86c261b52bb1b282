package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpsertCompanyProfileRequest struct {
	CompanyName        string `json:"company_name" validate:"required"`
	CUI                string `json:"cui"`
	RegistrationNumber string `json:"registration_number"`
	Address            string `json:"address"`
	Employees          string `json:"employees"`
	Representative     string `json:"representative"`
	Email              string `json:"email" validate:"omitempty,email"`
	Phone              string `json:"phone"`
}

type CompanyProfileResponse struct {
	Id                 uuid.UUID  `json:"id"`
	CompanyName        string     `json:"company_name"`
	CUI                string     `json:"cui"`
	RegistrationNumber string     `json:"registration_number"`
	Address            string     `json:"address"`
	Employees          string     `json:"employees"`
	Representative     string     `json:"representative"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}
