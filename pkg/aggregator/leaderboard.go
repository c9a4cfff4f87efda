package aggregator

import (
	"sort"
	"strconv"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/scoring"
)

// slotTotals is the running score of one picked player over the day.
type slotTotals struct {
	raw     float64
	matches int
}

func playerTotals(rb scoring.Rulebook, matches []*match.Match, accountID int64) slotTotals {
	var totals slotTotals
	for _, m := range matches {
		if points, played := rb.PlayerMatchPoints(m, accountID); played {
			totals.raw += points
			totals.matches++
		}
	}
	return totals
}

func teamTotals(rb scoring.Rulebook, matches []*match.Match, teamID int64) slotTotals {
	var totals slotTotals
	if teamID == 0 {
		return totals
	}
	for _, m := range matches {
		if points, played := rb.TeamMatchPoints(m, teamID); played {
			totals.raw += points
			totals.matches++
		}
	}
	return totals
}

// KnownNames collects the player and team names reported on the matches.
func KnownNames(matches []*match.Match) (players map[int64]string, teams map[int64]string) {
	players = make(map[int64]string)
	teams = make(map[int64]string)

	for _, m := range matches {
		for _, row := range m.Players {
			if row.Name != "" {
				players[row.AccountID] = row.Name
			}
		}
		if m.RadiantName != "" {
			teams[m.RadiantTeamID] = m.RadiantName
		}
		if m.DireName != "" {
			teams[m.DireTeamID] = m.DireName
		}
	}

	return players, teams
}

// Day is the input of a leaderboard build.
type Day struct {
	Rulebook    scoring.Rulebook
	Matches     []*match.Match
	Lineups     []*models.Lineup
	PlayerNames map[int64]string
	TeamNames   map[int64]string
}

// BuildLeaderboard scores every lineup of the day and ranks them.
// The result only depends on the input, so two builds over the same data are identical.
func BuildLeaderboard(day *Day) []models.LeaderboardEntry {
	// Scoring order must not depend on how the rows were read.
	matches := make([]*match.Match, len(day.Matches))
	copy(matches, day.Matches)
	sort.Slice(matches, func(i, j int) bool { return matches[i].MatchID < matches[j].MatchID })

	sweeps := scoring.DetectSweeps(matches)

	entries := make([]models.LeaderboardEntry, 0, len(day.Lineups))
	for _, lineup := range day.Lineups {
		entries = append(entries, scoreLineup(day, matches, sweeps, lineup))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].OwnerID < entries[j].OwnerID
	})

	// Equal totals share the rank.
	for i := range entries {
		if i > 0 && entries[i].TotalPoints == entries[i-1].TotalPoints {
			entries[i].Rank = entries[i-1].Rank
			continue
		}
		entries[i].Rank = i + 1
	}

	return entries
}

func scoreLineup(day *Day, matches []*match.Match, sweeps []scoring.Sweep, lineup *models.Lineup) models.LeaderboardEntry {
	rb := day.Rulebook
	bonus := rb.SweepBonus(sweeps, scoring.Roster{PlayerIDs: lineup.PlayerIDs(), TeamCard: lineup.TeamCard})

	slot := func(accountID int64, multiplier float64) (models.SlotScore, float64) {
		totals := playerTotals(rb, matches, accountID)
		sweep := bonus.Players[accountID]
		total := totals.raw*multiplier + sweep

		return models.SlotScore{
			PlayerID:   accountID,
			Name:       nameOf(day.PlayerNames, accountID),
			Matches:    totals.matches,
			Raw:        scoring.Round(totals.raw),
			Multiplier: multiplier,
			Sweep:      sweep,
			Total:      scoring.Round(total),
		}, total
	}

	captain, sum := slot(lineup.Captain, rb.CaptainMultiplier)
	breakdown := models.RosterBreakdown{
		Captain:  captain,
		Cores:    make([]models.SlotScore, 0, len(lineup.Cores)),
		Supports: make([]models.SlotScore, 0, len(lineup.Supports)),
	}

	for _, id := range lineup.Cores {
		score, total := slot(id, 1)
		breakdown.Cores = append(breakdown.Cores, score)
		sum += total
	}
	for _, id := range lineup.Supports {
		score, total := slot(id, 1)
		breakdown.Supports = append(breakdown.Supports, score)
		sum += total
	}

	team := teamTotals(rb, matches, lineup.TeamCard)
	teamTotal := team.raw + bonus.Team
	breakdown.Team = models.TeamScore{
		TeamID:  lineup.TeamCard,
		Name:    nameOf(day.TeamNames, lineup.TeamCard),
		Matches: team.matches,
		Raw:     scoring.Round(team.raw),
		Sweep:   bonus.Team,
		Total:   scoring.Round(teamTotal),
	}
	sum += teamTotal

	displayName := lineup.DisplayName
	if displayName == "" {
		displayName = lineup.OwnerID
	}

	return models.LeaderboardEntry{
		OwnerID:         lineup.OwnerID,
		DisplayName:     displayName,
		TotalPoints:     scoring.Round(sum),
		RosterBreakdown: breakdown,
	}
}

func nameOf(names map[int64]string, id int64) string {
	if name := names[id]; name != "" {
		return name
	}
	return strconv.FormatInt(id, 10)
}
