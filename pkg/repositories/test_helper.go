package repositories

import (
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"
	"gorm.io/datatypes"
)

// newSeedMatch builds a cached match row for the repository tests.
func newSeedMatch(matchID int64, dateKey string, complete bool) *models.Match {
	players := datatypes.JSONSlice[match.PlayerRow]{}
	reported := 0
	duration := 0
	if complete {
		for i := 0; i < 10; i++ {
			slot := i
			if i >= 5 {
				slot = 128 + i - 5
			}
			players = append(players, match.PlayerRow{AccountID: int64(1000 + i), PlayerSlot: slot, Kills: i})
		}
		reported = 10
		duration = 2100
	}

	return &models.Match{
		MatchID:         matchID,
		TournamentID:    "ti2025",
		DateKey:         dateKey,
		SeriesID:        matchID / 10,
		SeriesType:      1,
		RadiantTeamID:   1,
		DireTeamID:      2,
		RadiantWin:      true,
		Duration:        duration,
		StartTime:       matchID,
		Objectives:      datatypes.JSONSlice[match.Objective]{},
		Players:         players,
		ReportedPlayers: reported,
		Complete:        complete,
	}
}

func newSeedLineup(ownerID string, captain int64) *models.Lineup {
	return &models.Lineup{
		TournamentID: "ti2025",
		DateKey:      "20250911",
		OwnerID:      ownerID,
		DisplayName:  "manager " + ownerID,
		Captain:      captain,
		Cores:        datatypes.JSONSlice[int64]{11, 12},
		Supports:     datatypes.JSONSlice[int64]{13, 14},
		TeamCard:     1,
	}
}
