package aggregator

import (
	"fmt"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"
	"gorm.io/datatypes"
)

// newDayMatch builds a complete match where team ids map to account ids teamID*10+1..5.
// Players of team 1 go 5/1/5, everyone else 1/5/2. The winner razes every enemy structure.
func newDayMatch(matchID, seriesID int64, seriesType int, radiantTeam, direTeam int64, radiantWin bool) *models.Match {
	players := make(datatypes.JSONSlice[match.PlayerRow], 0, 10)
	for i := 0; i < 5; i++ {
		players = append(players, newRow(radiantTeam*10+int64(i+1), i, radiantTeam))
	}
	for i := 0; i < 5; i++ {
		players = append(players, newRow(direTeam*10+int64(i+1), 128+i, direTeam))
	}

	row := &models.Match{
		MatchID:         matchID,
		TournamentID:    "T",
		DateKey:         "20250911",
		SeriesID:        seriesID,
		SeriesType:      seriesType,
		RadiantTeamID:   radiantTeam,
		DireTeamID:      direTeam,
		RadiantName:     fmt.Sprintf("Team %d", radiantTeam),
		DireName:        fmt.Sprintf("Team %d", direTeam),
		RadiantWin:      radiantWin,
		Duration:        2400,
		StartTime:       1757584800 + matchID,
		Objectives:      datatypes.JSONSlice[match.Objective]{},
		Players:         players,
		ReportedPlayers: 10,
		Complete:        true,
	}

	if radiantWin {
		row.TowerStatusRadiant, row.BarracksStatusRadiant = 2047, 63
	} else {
		row.TowerStatusDire, row.BarracksStatusDire = 2047, 63
	}

	return row
}

func newRow(accountID int64, slot int, teamID int64) match.PlayerRow {
	row := match.PlayerRow{AccountID: accountID, PlayerSlot: slot, Name: fmt.Sprintf("p%d", accountID)}
	if teamID == 1 {
		row.Kills, row.Deaths, row.Assists = 5, 1, 5
	} else {
		row.Kills, row.Deaths, row.Assists = 1, 5, 2
	}
	return row
}

func toDomain(rows ...*models.Match) []*match.Match {
	result := make([]*match.Match, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.ToDomain())
	}
	return result
}

func newLineup(owner string, captain int64, cores, supports []int64, teamCard int64) *models.Lineup {
	return &models.Lineup{
		TournamentID: "T",
		DateKey:      "20250911",
		OwnerID:      owner,
		DisplayName:  owner,
		Captain:      captain,
		Cores:        cores,
		Supports:     supports,
		TeamCard:     teamCard,
		Locked:       true,
	}
}
