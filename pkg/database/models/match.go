package models

import (
	"time"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"
	"gorm.io/datatypes"
)

// Database model for a cached match.
// One row per external match id, owned by the match cache.
type Match struct {
	MatchID      int64  `gorm:"primaryKey;autoIncrement:false"`
	TournamentID string `gorm:"type:varchar(64);index:idx_matches_day"`
	DateKey      string `gorm:"type:char(8);index:idx_matches_day"`

	SeriesID      int64
	SeriesType    int
	RadiantTeamID int64
	DireTeamID    int64
	RadiantName   string `gorm:"type:varchar(100)"`
	DireName      string `gorm:"type:varchar(100)"`
	RadiantWin    bool

	Duration  int
	StartTime int64

	TowerStatusRadiant    int
	TowerStatusDire       int
	BarracksStatusRadiant int
	BarracksStatusDire    int

	Objectives datatypes.JSONSlice[match.Objective] `gorm:"type:jsonb;not null"`
	Players    datatypes.JSONSlice[match.PlayerRow] `gorm:"type:jsonb;not null"`

	// Number of player rows reported by the provider, quarantined rows included.
	ReportedPlayers int

	// Derived, can only go from false to true.
	Complete bool `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ToDomain converts the row to the scoring view.
func (m *Match) ToDomain() *match.Match {
	return &match.Match{
		MatchID:        m.MatchID,
		TournamentID:   m.TournamentID,
		SeriesID:       m.SeriesID,
		SeriesType:     m.SeriesType,
		RadiantTeamID:  m.RadiantTeamID,
		DireTeamID:     m.DireTeamID,
		RadiantName:    m.RadiantName,
		DireName:       m.DireName,
		RadiantWin:     m.RadiantWin,
		Duration:       m.Duration,
		StartTime:      m.StartTime,
		DateKey:        m.DateKey,
		TowerStatus:    [2]int{m.TowerStatusRadiant, m.TowerStatusDire},
		BarracksStatus: [2]int{m.BarracksStatusRadiant, m.BarracksStatusDire},
		Objectives:     []match.Objective(m.Objectives),
		Players:        []match.PlayerRow(m.Players),
		Complete:       m.Complete,
	}
}

// Merge applies an incoming projection over the stored row.
// Zero values on the incoming row never erase stored data and completeness never regresses.
func (m *Match) Merge(incoming *Match) *Match {
	if m.Complete && !incoming.Complete {
		return m.fillMissing(incoming)
	}

	merged := *m
	merged.fillIdentity(incoming, false)

	if incoming.Duration > 0 {
		merged.Duration = incoming.Duration
		// The winner is only meaningful once the provider reports a finished game.
		merged.RadiantWin = incoming.RadiantWin
	}
	if incoming.TowerStatusRadiant != 0 || incoming.TowerStatusDire != 0 {
		merged.TowerStatusRadiant = incoming.TowerStatusRadiant
		merged.TowerStatusDire = incoming.TowerStatusDire
	}
	if incoming.BarracksStatusRadiant != 0 || incoming.BarracksStatusDire != 0 {
		merged.BarracksStatusRadiant = incoming.BarracksStatusRadiant
		merged.BarracksStatusDire = incoming.BarracksStatusDire
	}
	if len(incoming.Objectives) > 0 {
		merged.Objectives = incoming.Objectives
	}
	if len(incoming.Players) > 0 {
		merged.Players = incoming.Players
	}
	if incoming.ReportedPlayers > 0 {
		merged.ReportedPlayers = incoming.ReportedPlayers
	}

	merged.Complete = m.Complete || incoming.Complete
	merged.ensureSlices()

	return &merged
}

// fillMissing keeps a complete row as scored.
// The weaker record may only fill identity fields the row never had.
func (m *Match) fillMissing(incoming *Match) *Match {
	merged := *m
	merged.fillIdentity(incoming, true)
	merged.ensureSlices()

	return &merged
}

// fillIdentity copies the non-zero identity fields of incoming.
// With onlyEmpty set, a field is written only when the row has no value yet.
func (m *Match) fillIdentity(incoming *Match, onlyEmpty bool) {
	if incoming.TournamentID != "" && (!onlyEmpty || m.TournamentID == "") {
		m.TournamentID = incoming.TournamentID
	}
	if incoming.DateKey != "" && (!onlyEmpty || m.DateKey == "") {
		m.DateKey = incoming.DateKey
	}
	if incoming.StartTime != 0 && (!onlyEmpty || m.StartTime == 0) {
		m.StartTime = incoming.StartTime
	}
	if incoming.SeriesID != 0 && (!onlyEmpty || m.SeriesID == 0) {
		m.SeriesID = incoming.SeriesID
	}
	if incoming.SeriesType != 0 && (!onlyEmpty || m.SeriesType == 0) {
		m.SeriesType = incoming.SeriesType
	}
	if incoming.RadiantTeamID != 0 && (!onlyEmpty || m.RadiantTeamID == 0) {
		m.RadiantTeamID = incoming.RadiantTeamID
	}
	if incoming.DireTeamID != 0 && (!onlyEmpty || m.DireTeamID == 0) {
		m.DireTeamID = incoming.DireTeamID
	}
	if incoming.RadiantName != "" && (!onlyEmpty || m.RadiantName == "") {
		m.RadiantName = incoming.RadiantName
	}
	if incoming.DireName != "" && (!onlyEmpty || m.DireName == "") {
		m.DireName = incoming.DireName
	}
}

func (m *Match) ensureSlices() {
	if m.Objectives == nil {
		m.Objectives = datatypes.JSONSlice[match.Objective]{}
	}
	if m.Players == nil {
		m.Players = datatypes.JSONSlice[match.PlayerRow]{}
	}
}
