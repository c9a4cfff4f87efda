package scoring

import "github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"

// ScorePlayer converts a single stat row into points.
// Absent stats are zero, so the function never fails.
func (r Rulebook) ScorePlayer(row match.PlayerRow, duration int, won bool) float64 {
	points := float64(row.Kills)*r.Kill +
		float64(row.Assists)*r.Assist +
		float64(row.Deaths)*r.Death +
		float64(row.LastHits)*r.LastHit +
		float64(row.Denies)*r.Deny +
		float64(row.WardsPlaced)*r.WardPlaced +
		float64(row.CampsStacked)*r.CampStacked

	if won {
		points += r.WinBonus

		// Strictly under the limit, a 25:00 game doesn't count.
		if duration < r.FastWinSeconds {
			points += r.FastWinBonus
		}
	}

	if row.Kills+row.Assists >= r.ComboThreshold {
		points += r.ComboBonus
	}

	return points
}

// PlayerMatchPoints scores an account on a match, false if it didn't play.
func (r Rulebook) PlayerMatchPoints(m *match.Match, accountID int64) (float64, bool) {
	row, ok := m.Player(accountID)
	if !ok {
		return 0, false
	}

	won := row.Side() == m.Winner()
	return r.ScorePlayer(row, m.Duration, won), true
}
