package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDeadlineRequest struct {
	Title   string `json:"title" validate:"required"`
	Type    string `json:"type" validate:"omitempty,oneof=fiscal gdpr labor other"`
	DueDate string `json:"due_date" validate:"required,datetime=2006-01-02"`
}

type UpdateDeadlineRequest struct {
	Title       string `json:"title"`
	Type        string `json:"type" validate:"omitempty,oneof=fiscal gdpr labor other"`
	DueDate     string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	IsCompleted *bool  `json:"is_completed"`
}

type DeadlineResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	DueDate     time.Time `json:"due_date"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}
