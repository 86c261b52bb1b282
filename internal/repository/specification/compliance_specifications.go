package specification

import (
	"time"

	"gorm.io/gorm"
)

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// DeadlineWithin keeps rows whose deadline falls inside [From, To).
type DeadlineWithin struct {
	From time.Time
	To   time.Time
}

func (s DeadlineWithin) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("deadline >= ? AND deadline < ?", s.From, s.To)
}
