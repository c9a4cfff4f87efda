package scoring

import (
	"math/bits"

	objectivevalues "github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/dotavalues/objective"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"
)

// TeamSideStats is the team-level telemetry attributed to one side.
type TeamSideStats struct {
	Towers     int
	Barracks   int
	Roshans    int
	FirstBlood bool
	Won        bool
}

// standing counts the structures still alive on a status bitmask.
func standing(status int, structures int) int {
	mask := uint(1)<<uint(structures) - 1
	return bits.OnesCount(uint(status) & mask)
}

// TowersDestroyed returns how many enemy towers the side took down.
func TowersDestroyed(m *match.Match, side match.Side) int {
	return objectivevalues.TowerCount - standing(m.TowerStatus[side.Opponent()], objectivevalues.TowerCount)
}

// BarracksDestroyed returns how many enemy barracks the side took down.
func BarracksDestroyed(m *match.Match, side match.Side) int {
	return objectivevalues.BarracksCount - standing(m.BarracksStatus[side.Opponent()], objectivevalues.BarracksCount)
}

// RoshanKills counts the roshans of a side.
// Objective events are preferred, the per-player counters are the fallback.
func RoshanKills(m *match.Match, side match.Side) int {
	var kills [2]int
	found := false

	for _, o := range m.Objectives {
		if o.Type != objectivevalues.RoshanKill {
			continue
		}
		found = true

		if s, ok := o.Side(); ok {
			kills[s]++
		}
	}

	if found {
		return kills[side]
	}

	for _, p := range m.Players {
		kills[p.Side()] += p.RoshanKills
	}

	return kills[side]
}

// FirstBloodSide returns the side owning the first first-blood event.
func FirstBloodSide(m *match.Match) (match.Side, bool) {
	for _, o := range m.Objectives {
		if o.Type != objectivevalues.FirstBlood {
			continue
		}

		if s, ok := o.Side(); ok {
			return s, true
		}
	}

	return match.Radiant, false
}

// TeamSide collects the team-level telemetry of one side.
func TeamSide(m *match.Match, side match.Side) TeamSideStats {
	fbSide, hasFirstBlood := FirstBloodSide(m)

	return TeamSideStats{
		Towers:     TowersDestroyed(m, side),
		Barracks:   BarracksDestroyed(m, side),
		Roshans:    RoshanKills(m, side),
		FirstBlood: hasFirstBlood && fbSide == side,
		Won:        m.Winner() == side,
	}
}

// ScoreTeamSide converts one side's team telemetry into points.
func (r Rulebook) ScoreTeamSide(stats TeamSideStats) float64 {
	points := float64(stats.Towers)*r.Tower +
		float64(stats.Barracks)*r.Barracks +
		float64(stats.Roshans)*r.Roshan

	if stats.FirstBlood {
		points += r.FirstBlood
	}

	if stats.Won {
		points += r.TeamWin
	}

	return points
}

// TeamMatchPoints scores a team card on a match, false if the team didn't play.
func (r Rulebook) TeamMatchPoints(m *match.Match, teamID int64) (float64, bool) {
	side, ok := m.SideOfTeam(teamID)
	if !ok {
		return 0, false
	}
	return r.ScoreTeamSide(TeamSide(m, side)), true
}
