package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompanyProfile holds the firm identity used to prefill generated documents.
// One profile per user.
type CompanyProfile struct {
	Id                 uuid.UUID
	UserId             uuid.UUID
	CompanyName        string
	CUI                string
	RegistrationNumber string
	Address            string
	Employees          string
	Representative     string
	Email              string
	Phone              string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}
