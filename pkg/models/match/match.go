package match

import (
	objectivevalues "github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/dotavalues/objective"
)

// Side of the map a player or team plays on.
type Side int

const (
	Radiant Side = iota
	Dire
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Radiant {
		return Dire
	}
	return Radiant
}

func (s Side) String() string {
	if s == Radiant {
		return "radiant"
	}
	return "dire"
}

// SideOfSlot decodes the side from a player slot.
// Slots below 128 are radiant, the rest are dire.
func SideOfSlot(slot int) Side {
	if slot < 128 {
		return Radiant
	}
	return Dire
}

// PlayerRow is the scored stat line of a single player in a match.
type PlayerRow struct {
	AccountID    int64  `json:"account_id"`
	PlayerSlot   int    `json:"player_slot"`
	Name         string `json:"name,omitempty"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
	LastHits     int    `json:"last_hits"`
	Denies       int    `json:"denies"`
	WardsPlaced  int    `json:"wards_placed"`
	CampsStacked int    `json:"camps_stacked"`
	RoshanKills  int    `json:"roshan_kills"`
}

// Side returns the side of the player.
func (p PlayerRow) Side() Side {
	return SideOfSlot(p.PlayerSlot)
}

// Objective is a timestamped objective event.
// Either the player slot or the team identifies the side that took it.
type Objective struct {
	Time       int    `json:"time"`
	Type       string `json:"type"`
	PlayerSlot *int   `json:"player_slot,omitempty"`
	Team       *int   `json:"team,omitempty"`
}

// Side returns the side that owns the objective, false when it can't be attributed.
func (o Objective) Side() (Side, bool) {
	if o.PlayerSlot != nil {
		return SideOfSlot(*o.PlayerSlot), true
	}

	if o.Team != nil {
		switch *o.Team {
		case objectivevalues.TeamRadiant:
			return Radiant, true
		case objectivevalues.TeamDire:
			return Dire, true
		}
	}

	return Radiant, false
}

// Match is the scoring view of a single game.
type Match struct {
	MatchID        int64
	TournamentID   string
	SeriesID       int64
	SeriesType     int
	RadiantTeamID  int64
	DireTeamID     int64
	RadiantName    string
	DireName       string
	RadiantWin     bool
	Duration       int
	StartTime      int64
	DateKey        string
	TowerStatus    [2]int
	BarracksStatus [2]int
	Objectives     []Objective
	Players        []PlayerRow
	Complete       bool
}

// Winner returns the side that won the match.
func (m *Match) Winner() Side {
	if m.RadiantWin {
		return Radiant
	}
	return Dire
}

// TeamID returns the team id playing on the given side.
func (m *Match) TeamID(side Side) int64 {
	if side == Radiant {
		return m.RadiantTeamID
	}
	return m.DireTeamID
}

// WinnerTeamID returns the team id of the winning side.
func (m *Match) WinnerTeamID() int64 {
	return m.TeamID(m.Winner())
}

// SideOfTeam finds the side a team played on.
func (m *Match) SideOfTeam(teamID int64) (Side, bool) {
	if teamID == 0 {
		return Radiant, false
	}

	switch teamID {
	case m.RadiantTeamID:
		return Radiant, true
	case m.DireTeamID:
		return Dire, true
	}

	return Radiant, false
}

// Player finds the stat row of a given account.
func (m *Match) Player(accountID int64) (PlayerRow, bool) {
	for _, p := range m.Players {
		if p.AccountID == accountID {
			return p, true
		}
	}
	return PlayerRow{}, false
}

// SeriesKey groups matches into series, falling back to the match id.
func (m *Match) SeriesKey() int64 {
	if m.SeriesID != 0 {
		return m.SeriesID
	}
	return m.MatchID
}

// IsComplete is the completeness predicate.
// A match can be scored when it reports ten player rows and a positive duration.
func IsComplete(reportedPlayers int, duration int) bool {
	return reportedPlayers == 10 && duration > 0
}
