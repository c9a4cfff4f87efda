package scoring

import (
	"testing"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSweeps(t *testing.T) {
	tests := []struct {
		name    string
		matches []*match.Match
		teams   []int64
	}{
		{
			name: "bo3TwoNil",
			matches: []*match.Match{
				newTestMatch(1, 10, 1, 100, 200, true, 1000, 2000),
				newTestMatch(2, 10, 1, 100, 200, true, 1000, 2000),
			},
			teams: []int64{100},
		},
		{
			name: "bo3TwoOne",
			matches: []*match.Match{
				newTestMatch(1, 10, 1, 100, 200, true, 1000, 2000),
				newTestMatch(2, 10, 1, 100, 200, false, 1000, 2000),
				newTestMatch(3, 10, 1, 100, 200, true, 1000, 2000),
			},
			teams: []int64{},
		},
		{
			name: "bo3SideSwap",
			matches: []*match.Match{
				newTestMatch(1, 10, 1, 100, 200, false, 1000, 2000),
				newTestMatch(2, 10, 1, 200, 100, true, 2000, 1000),
			},
			teams: []int64{200},
		},
		{
			name: "bo3InProgress",
			matches: []*match.Match{
				newTestMatch(1, 10, 1, 100, 200, true, 1000, 2000),
			},
			teams: []int64{},
		},
		{
			name: "bo5ThreeNil",
			matches: []*match.Match{
				newTestMatch(1, 20, 2, 100, 200, true, 1000, 2000),
				newTestMatch(2, 20, 2, 200, 100, false, 2000, 1000),
				newTestMatch(3, 20, 2, 100, 200, true, 1000, 2000),
			},
			teams: []int64{100},
		},
		{
			name: "bo5TwoNilIsNotYetASweep",
			matches: []*match.Match{
				newTestMatch(1, 20, 2, 100, 200, true, 1000, 2000),
				newTestMatch(2, 20, 2, 100, 200, true, 1000, 2000),
			},
			teams: []int64{},
		},
		{
			name: "bo1NeverSweeps",
			matches: []*match.Match{
				newTestMatch(1, 0, 0, 100, 200, true, 1000, 2000),
			},
			teams: []int64{},
		},
		{
			name: "twoSeriesSameDay",
			matches: []*match.Match{
				newTestMatch(1, 10, 1, 100, 200, true, 1000, 2000),
				newTestMatch(5, 30, 1, 300, 100, true, 3000, 1000),
				newTestMatch(2, 10, 1, 100, 200, true, 1000, 2000),
				newTestMatch(6, 30, 1, 300, 100, true, 3000, 1000),
			},
			teams: []int64{100, 300},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sweeps := DetectSweeps(tt.matches)

			teams := make([]int64, 0, len(sweeps))
			for _, s := range sweeps {
				teams = append(teams, s.TeamID)
			}
			assert.Equal(t, tt.teams, teams)
		})
	}
}

func TestSweepBonusBo3TwoNil(t *testing.T) {
	rb := DefaultRulebook()
	sweeps := DetectSweeps([]*match.Match{
		newTestMatch(1, 10, 1, 100, 200, true, 1000, 2000),
		newTestMatch(2, 10, 1, 100, 200, true, 1000, 2000),
	})
	require.Len(t, sweeps, 1)

	radiantCard := rb.SweepBonus(sweeps, Roster{TeamCard: 100, PlayerIDs: []int64{1000, 1001, 2000}})
	assert.Equal(t, 15.0, radiantCard.Team)
	assert.Equal(t, map[int64]float64{1000: 15, 1001: 15}, radiantCard.Players)

	direCard := rb.SweepBonus(sweeps, Roster{TeamCard: 200, PlayerIDs: []int64{2000}})
	assert.Equal(t, 0.0, direCard.Team)
	assert.Empty(t, direCard.Players)
}

func TestSweepBonusTwoOneGivesNothing(t *testing.T) {
	rb := DefaultRulebook()
	sweeps := DetectSweeps([]*match.Match{
		newTestMatch(1, 10, 1, 100, 200, true, 1000, 2000),
		newTestMatch(2, 10, 1, 100, 200, false, 1000, 2000),
		newTestMatch(3, 10, 1, 100, 200, true, 1000, 2000),
	})

	for _, card := range []int64{100, 200} {
		bonus := rb.SweepBonus(sweeps, Roster{TeamCard: card, PlayerIDs: []int64{1000, 2000}})
		assert.Equal(t, 0.0, bonus.Team)
		assert.Empty(t, bonus.Players)
	}
}

func TestSweepBonusStacksAcrossSeries(t *testing.T) {
	rb := DefaultRulebook()
	sweeps := DetectSweeps([]*match.Match{
		newTestMatch(1, 10, 1, 100, 200, true, 1000, 2000),
		newTestMatch(2, 10, 1, 100, 200, true, 1000, 2000),
		newTestMatch(3, 11, 1, 100, 300, true, 1000, 3000),
		newTestMatch(4, 11, 1, 300, 100, false, 3000, 1000),
	})
	require.Len(t, sweeps, 2)

	bonus := rb.SweepBonus(sweeps, Roster{TeamCard: 100, PlayerIDs: []int64{1000, 1000}})
	assert.Equal(t, 30.0, bonus.Team)
	assert.Equal(t, map[int64]float64{1000: 30}, bonus.Players)
}

func TestSweepBonusStandInPlayedOneGame(t *testing.T) {
	rb := DefaultRulebook()
	first := newTestMatch(1, 10, 1, 100, 200, true, 1000, 2000)
	second := newTestMatch(2, 10, 1, 100, 200, true, 1000, 2000)
	// A stand-in replaced account 1004 in the second game only.
	second.Players[4].AccountID = 1999

	bonus := rb.SweepBonus(DetectSweeps([]*match.Match{first, second}), Roster{PlayerIDs: []int64{1004, 1999}})
	assert.Equal(t, map[int64]float64{1004: 15, 1999: 15}, bonus.Players)
}

func TestSweepBonusVariant(t *testing.T) {
	bonus := 30.0
	rb := DefaultRulebook().Apply(&Overrides{SweepTeamBonus: &bonus, SweepPlayerBonus: &bonus})
	sweeps := DetectSweeps([]*match.Match{
		newTestMatch(1, 10, 1, 100, 200, true, 1000, 2000),
		newTestMatch(2, 10, 1, 100, 200, true, 1000, 2000),
	})

	got := rb.SweepBonus(sweeps, Roster{TeamCard: 100, PlayerIDs: []int64{1000}})
	assert.Equal(t, 30.0, got.Team)
	assert.Equal(t, 30.0, got.Players[1000])
}
