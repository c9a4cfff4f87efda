package models

import (
	"encoding/json"
	"fmt"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/scoring"
	"gorm.io/datatypes"
)

// Database model for a tournament configuration.
type Tournament struct {
	ID           string                     `gorm:"primaryKey;type:varchar(64)"`
	Name         string                     `gorm:"type:varchar(100)"`
	LeagueIDs    datatypes.JSONSlice[int64] `gorm:"column:league_ids;type:jsonb;not null"`
	LockHourUTC  int                        `gorm:"column:lock_hour_utc"`
	CoreCount    int
	SupportCount int
	Rulebook     datatypes.JSON `gorm:"type:jsonb"`
	Active       bool           `gorm:"index"`
}

// GetRulebook returns the default rulebook with the tournament overrides applied.
func (t *Tournament) GetRulebook() (scoring.Rulebook, error) {
	base := scoring.DefaultRulebook()
	if len(t.Rulebook) == 0 || string(t.Rulebook) == "null" {
		return base, nil
	}

	var overrides scoring.Overrides
	if err := json.Unmarshal(t.Rulebook, &overrides); err != nil {
		return base, fmt.Errorf("invalid rulebook for tournament %s: %w", t.ID, err)
	}

	return base.Apply(&overrides), nil
}
