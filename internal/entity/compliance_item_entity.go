package entity

import (
	"time"

	"github.com/google/uuid"
)

type ComplianceStatus string

const (
	ComplianceStatusPending    ComplianceStatus = "pending"
	ComplianceStatusInProgress ComplianceStatus = "in_progress"
	ComplianceStatusCompleted  ComplianceStatus = "completed"
)

type ComplianceCategory string

const (
	ComplianceCategoryGdpr   ComplianceCategory = "gdpr"
	ComplianceCategoryFiscal ComplianceCategory = "fiscal"
	ComplianceCategoryLabor  ComplianceCategory = "labor"
)

type ComplianceItem struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	Category  ComplianceCategory
	Status    ComplianceStatus
	Deadline  *time.Time
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

// ComplianceStats is the dashboard aggregate: counts per status and category
// plus the nearest upcoming deadlines.
type ComplianceStats struct {
	Total             int
	ByStatus          map[ComplianceStatus]int
	ByCategory        map[ComplianceCategory]int
	UpcomingDeadlines []*ComplianceItem
}
