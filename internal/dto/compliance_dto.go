package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateComplianceItemRequest struct {
	Title    string `json:"title" validate:"required"`
	Category string `json:"category" validate:"required,oneof=gdpr fiscal labor"`
	Deadline string `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateComplianceItemRequest struct {
	Title    string `json:"title"`
	Category string `json:"category" validate:"omitempty,oneof=gdpr fiscal labor"`
	Status   string `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Deadline string `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
}

type ComplianceItemResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Category  string     `json:"category"`
	Status    string     `json:"status"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ComplianceStatsResponse struct {
	Total             int                      `json:"total"`
	ByStatus          map[string]int           `json:"by_status"`
	ByCategory        map[string]int           `json:"by_category"`
	CompletionPercent int                      `json:"completion_percent"`
	UpcomingDeadlines []ComplianceItemResponse `json:"upcoming_deadlines"`
}
