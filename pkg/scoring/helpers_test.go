package scoring

import "github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"

func intPtr(v int) *int { return &v }

// newTestMatch creates a finished match with ten players, radiant slots 0-4 and dire slots 128-132.
// Radiant accounts are radiantBase+0..4 and dire accounts direBase+0..4.
func newTestMatch(id, seriesID int64, seriesType int, radiant, dire int64, radiantWin bool, radiantBase, direBase int64) *match.Match {
	players := make([]match.PlayerRow, 0, 10)
	for i := 0; i < 5; i++ {
		players = append(players, match.PlayerRow{AccountID: radiantBase + int64(i), PlayerSlot: i})
	}
	for i := 0; i < 5; i++ {
		players = append(players, match.PlayerRow{AccountID: direBase + int64(i), PlayerSlot: 128 + i})
	}

	return &match.Match{
		MatchID:        id,
		SeriesID:       seriesID,
		SeriesType:     seriesType,
		RadiantTeamID:  radiant,
		DireTeamID:     dire,
		RadiantWin:     radiantWin,
		Duration:       2400,
		TowerStatus:    [2]int{2047, 2047},
		BarracksStatus: [2]int{63, 63},
		Players:        players,
		Complete:       true,
	}
}
