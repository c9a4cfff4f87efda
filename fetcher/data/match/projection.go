package matchfetcher

import (
	"errors"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/datekey"
	objectivevalues "github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/dotavalues/objective"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"
	"gorm.io/datatypes"
)

// ErrMalformedMatch is returned for payloads that can't be cached at all.
var ErrMalformedMatch = errors.New("malformed match payload")

// Projection is the cache row built from a detail payload.
type Projection struct {
	Match *models.Match

	// Rows dropped for not carrying an account id.
	Quarantined int
}

// teamID prefers the embedded team block over the flat id.
func teamID(flat int64, info *TeamInfo) int64 {
	if info != nil && info.TeamID != 0 {
		return info.TeamID
	}
	return flat
}

func teamName(info *TeamInfo) string {
	if info == nil {
		return ""
	}
	return info.Name
}

// Project validates the payload and converts it into a cache row for the tournament.
func (d *MatchDetail) Project(tournamentID string) (*Projection, error) {
	if d == nil || d.MatchID == 0 {
		return nil, ErrMalformedMatch
	}

	players := make(datatypes.JSONSlice[match.PlayerRow], 0, len(d.Players))
	quarantined := 0
	for _, p := range d.Players {
		if p.AccountID == nil || *p.AccountID == 0 {
			quarantined++
			continue
		}

		name := p.Name
		if name == "" {
			name = p.Personaname
		}

		players = append(players, match.PlayerRow{
			AccountID:    *p.AccountID,
			PlayerSlot:   p.PlayerSlot,
			Name:         name,
			Kills:        p.Kills,
			Deaths:       p.Deaths,
			Assists:      p.Assists,
			LastHits:     p.LastHits,
			Denies:       p.Denies,
			WardsPlaced:  p.ObsPlaced + p.SenPlaced,
			CampsStacked: p.CampsStacked,
			RoshanKills:  p.RoshanKills,
		})
	}

	// Only the events scoring looks at are kept.
	objectives := make(datatypes.JSONSlice[match.Objective], 0)
	for _, o := range d.Objectives {
		if o.Type != objectivevalues.RoshanKill && o.Type != objectivevalues.FirstBlood {
			continue
		}
		objectives = append(objectives, match.Objective{
			Time:       o.Time,
			Type:       o.Type,
			PlayerSlot: o.PlayerSlot,
			Team:       o.Team,
		})
	}

	row := &models.Match{
		MatchID:               d.MatchID,
		TournamentID:          tournamentID,
		SeriesID:              d.SeriesID,
		SeriesType:            d.SeriesType,
		RadiantTeamID:         teamID(d.RadiantTeamID, d.RadiantTeam),
		DireTeamID:            teamID(d.DireTeamID, d.DireTeam),
		RadiantName:           teamName(d.RadiantTeam),
		DireName:              teamName(d.DireTeam),
		RadiantWin:            d.RadiantWin,
		Duration:              d.Duration,
		StartTime:             d.StartTime,
		TowerStatusRadiant:    d.TowerStatusRadiant,
		TowerStatusDire:       d.TowerStatusDire,
		BarracksStatusRadiant: d.BarracksStatusRadiant,
		BarracksStatusDire:    d.BarracksStatusDire,
		Objectives:            objectives,
		Players:               players,
		ReportedPlayers:       len(d.Players),
		Complete:              match.IsComplete(len(d.Players), d.Duration),
	}
	if d.StartTime > 0 {
		row.DateKey = datekey.FromUnix(d.StartTime)
	}

	return &Projection{Match: row, Quarantined: quarantined}, nil
}
