package db

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/thatcatcamp/folio/internal/engine"
	"github.com/thatcatcamp/folio/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceStore persists one visitor's theme selection. It satisfies
// engine.Store.
type PreferenceStore struct {
	db        *gorm.DB
	visitorID string
}

func NewPreferenceStore(database *gorm.DB, visitorID string) *PreferenceStore {
	return &PreferenceStore{db: database, visitorID: visitorID}
}

// Get returns the stored value. Lookup errors read as missing so a broken
// database never blocks rendering.
func (s *PreferenceStore) Get(key string) (string, bool) {
	var pref models.Preference
	err := s.db.Where("visitor_id = ? AND `key` = ?", s.visitorID, key).
		Limit(1).
		Find(&pref).Error
	if err != nil || pref.ID == 0 {
		return "", false
	}
	return pref.Value, true
}

// Set upserts the value.
func (s *PreferenceStore) Set(key, value string) error {
	pref := models.Preference{VisitorID: s.visitorID, Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "visitor_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return fmt.Errorf("failed to save preference %s: %w", key, err)
	}
	return nil
}

// DeleteVisitor removes every stored value for a visitor.
func DeleteVisitor(database *gorm.DB, visitorID string) error {
	if err := database.Where("visitor_id = ?", visitorID).Delete(&models.Preference{}).Error; err != nil {
		return fmt.Errorf("failed to delete preferences: %w", err)
	}
	return nil
}

// VisitorSelection is a visitor's persisted theme and mode.
type VisitorSelection struct {
	VisitorID string    `json:"visitor_id"`
	Theme     string    `json:"theme,omitempty"`
	Mode      string    `json:"mode,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListVisitors returns every visitor with stored values, ordered by id.
func ListVisitors(database *gorm.DB) ([]VisitorSelection, error) {
	var prefs []models.Preference
	if err := database.Order("visitor_id").Find(&prefs).Error; err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}

	grouped := lo.GroupBy(prefs, func(p models.Preference) string { return p.VisitorID })
	ids := lo.Uniq(lo.Map(prefs, func(p models.Preference, _ int) string { return p.VisitorID }))

	return lo.Map(ids, func(id string, _ int) VisitorSelection {
		sel := VisitorSelection{VisitorID: id}
		for _, p := range grouped[id] {
			switch p.Key {
			case engine.KeyThemeName:
				sel.Theme = p.Value
			case engine.KeyColorMode:
				sel.Mode = p.Value
			}
			if p.UpdatedAt.After(sel.UpdatedAt) {
				sel.UpdatedAt = p.UpdatedAt
			}
		}
		return sel
	}), nil
}
