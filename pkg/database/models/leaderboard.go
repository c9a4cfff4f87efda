package models

import (
	"time"

	"gorm.io/datatypes"
)

// SlotScore is the breakdown of a single picked player.
type SlotScore struct {
	PlayerID   int64   `json:"player_id"`
	Name       string  `json:"name"`
	Matches    int     `json:"matches"`
	Raw        float64 `json:"raw"`
	Multiplier float64 `json:"multiplier"`
	Sweep      float64 `json:"sweep"`
	Total      float64 `json:"total"`
}

// TeamScore is the breakdown of the team card.
type TeamScore struct {
	TeamID  int64   `json:"team_id"`
	Name    string  `json:"name"`
	Matches int     `json:"matches"`
	Raw     float64 `json:"raw"`
	Sweep   float64 `json:"sweep"`
	Total   float64 `json:"total"`
}

// RosterBreakdown explains how a lineup reached its total.
type RosterBreakdown struct {
	Captain  SlotScore   `json:"captain"`
	Cores    []SlotScore `json:"cores"`
	Supports []SlotScore `json:"supports"`
	Team     TeamScore   `json:"team"`
}

// LeaderboardEntry is a single ranked lineup.
type LeaderboardEntry struct {
	Rank            int             `json:"rank"`
	OwnerID         string          `json:"owner_id"`
	DisplayName     string          `json:"display_name"`
	TotalPoints     float64         `json:"total_points"`
	RosterBreakdown RosterBreakdown `json:"roster_breakdown"`
}

// Database model for a day's leaderboard.
// The whole document is replaced on every aggregation.
type Leaderboard struct {
	TournamentID string `gorm:"primaryKey;type:varchar(64)"`
	DateKey      string `gorm:"primaryKey;type:char(8)"`

	Entries       datatypes.JSONSlice[LeaderboardEntry] `gorm:"type:jsonb;not null"`
	MatchesScored int
	RulebookVer   string `gorm:"column:rulebook_version;type:varchar(32)"`

	UpdatedAt time.Time
}
