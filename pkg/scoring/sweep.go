package scoring

import (
	"sort"

	seriesvalues "github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/dotavalues/series"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"
)

// Sweep is a series won without dropping a game.
type Sweep struct {
	SeriesKey int64
	TeamID    int64
	Wins      int
	Matches   []*match.Match
}

// SweepBonus is what a lineup earns from the sweeps of a day.
type SweepBonus struct {
	Team    float64
	Players map[int64]float64
}

// Roster is the set of picks checked against the sweeps.
type Roster struct {
	PlayerIDs []int64
	TeamCard  int64
}

// DetectSweeps groups the matches by series and returns the swept ones, ordered by series key.
func DetectSweeps(matches []*match.Match) []Sweep {
	bySeries := make(map[int64][]*match.Match)
	keys := make([]int64, 0)

	for _, m := range matches {
		key := m.SeriesKey()
		if _, exists := bySeries[key]; !exists {
			keys = append(keys, key)
		}
		bySeries[key] = append(bySeries[key], m)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	sweeps := make([]Sweep, 0)
	for _, key := range keys {
		if sweep, ok := detectSeriesSweep(key, bySeries[key]); ok {
			sweeps = append(sweeps, sweep)
		}
	}

	return sweeps
}

// detectSeriesSweep counts the wins of each team id in a series.
// Teams can swap sides between games, so the count is by team and not by side.
func detectSeriesSweep(key int64, games []*match.Match) (Sweep, bool) {
	threshold := seriesvalues.WinThreshold(games[0].SeriesType)
	if threshold == 0 {
		return Sweep{}, false
	}

	wins := make(map[int64]int)
	for _, g := range games {
		wins[g.RadiantTeamID] += 0
		wins[g.DireTeamID] += 0
		wins[g.WinnerTeamID()]++
	}

	// A series is between exactly two teams.
	if len(wins) != 2 {
		return Sweep{}, false
	}

	for teamID, teamWins := range wins {
		if teamID == 0 || teamWins < threshold {
			continue
		}

		for otherID, otherWins := range wins {
			if otherID != teamID && otherWins == 0 {
				return Sweep{SeriesKey: key, TeamID: teamID, Wins: teamWins, Matches: games}, true
			}
		}
	}

	return Sweep{}, false
}

// playedFor reports whether an account played on the sweeping team in any game of the series.
func (s Sweep) playedFor(accountID int64) bool {
	for _, g := range s.Matches {
		side, ok := g.SideOfTeam(s.TeamID)
		if !ok {
			continue
		}

		if row, found := g.Player(accountID); found && row.Side() == side {
			return true
		}
	}
	return false
}

// SweepBonus attributes the sweep bonuses of a day to a roster.
// The team bonus is paid per swept series of the team card, the player bonus once per swept
// series for every roster member who played for the sweeping team. Multiple sweeps stack.
func (r Rulebook) SweepBonus(sweeps []Sweep, roster Roster) SweepBonus {
	bonus := SweepBonus{Players: make(map[int64]float64)}

	for _, s := range sweeps {
		if roster.TeamCard != 0 && roster.TeamCard == s.TeamID {
			bonus.Team += r.SweepTeamBonus
		}

		seen := make(map[int64]bool)
		for _, id := range roster.PlayerIDs {
			if id == 0 || seen[id] {
				continue
			}
			seen[id] = true

			if s.playedFor(id) {
				bonus.Players[id] += r.SweepPlayerBonus
			}
		}
	}

	return bonus
}
