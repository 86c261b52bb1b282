package dto

import "github.com/google/uuid"

// DeadlineReminderMessage is the payload published when a deadline
// approaches its due date.
type DeadlineReminderMessage struct {
	DeadlineId uuid.UUID `json:"deadline_id"`
	UserId     uuid.UUID `json:"user_id"`
}
