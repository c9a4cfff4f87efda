package dto

import (
	"time"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
)

// Leaderboard is the public view of a day's standings.
type Leaderboard struct {
	TournamentID    string                    `json:"tournamentId"`
	DateKey         string                    `json:"dateKey"`
	Entries         []models.LeaderboardEntry `json:"entries"`
	MatchesScored   int                       `json:"matchesScored"`
	RulebookVersion string                    `json:"rulebookVersion,omitempty"`
	UpdatedAt       *time.Time                `json:"updatedAt,omitempty"`
}

// FromModel converts the stored document.
func (l *Leaderboard) FromModel(model *models.Leaderboard) *Leaderboard {
	entries := []models.LeaderboardEntry(model.Entries)
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}

	updatedAt := model.UpdatedAt
	return &Leaderboard{
		TournamentID:    model.TournamentID,
		DateKey:         model.DateKey,
		Entries:         entries,
		MatchesScored:   model.MatchesScored,
		RulebookVersion: model.RulebookVer,
		UpdatedAt:       &updatedAt,
	}
}

// RescoreResult is returned by an on demand aggregation.
type RescoreResult struct {
	Count int `json:"count"`
}
