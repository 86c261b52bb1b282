package specification

import (
	"time"

	"gorm.io/gorm"
)

// DueWithin keeps deadlines whose due date falls inside [From, To).
type DueWithin struct {
	From time.Time
	To   time.Time
}

func (s DueWithin) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("due_date >= ? AND due_date < ?", s.From, s.To)
}

type NotCompleted struct{}

func (s NotCompleted) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_completed = ?", false)
}
