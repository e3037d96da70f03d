package models

import (
	"time"
)

// Preference is one persisted selection value for a visitor.
type Preference struct {
	ID        uint   `gorm:"primaryKey"`
	VisitorID string `gorm:"not null;size:64;uniqueIndex:idx_visitor_key"`
	Key       string `gorm:"not null;size:32;uniqueIndex:idx_visitor_key"`
	Value     string `gorm:"not null;size:64"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides for consistent naming
func (Preference) TableName() string {
	return "preferences"
}
