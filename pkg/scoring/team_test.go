package scoring

import (
	"testing"

	objectivevalues "github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/dotavalues/objective"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"
	"github.com/stretchr/testify/assert"
)

func TestStructuresDestroyed(t *testing.T) {
	m := newTestMatch(1, 0, 0, 100, 200, true, 1000, 2000)
	// Dire lost 5 towers and 2 barracks, radiant lost a single tower.
	m.TowerStatus = [2]int{0b11111111110, 0b11111100000}
	m.BarracksStatus = [2]int{0b111111, 0b001111}

	assert.Equal(t, 5, TowersDestroyed(m, match.Radiant))
	assert.Equal(t, 1, TowersDestroyed(m, match.Dire))
	assert.Equal(t, 2, BarracksDestroyed(m, match.Radiant))
	assert.Equal(t, 0, BarracksDestroyed(m, match.Dire))
}

func TestStructuresIgnoreBitsOutsideMask(t *testing.T) {
	m := newTestMatch(1, 0, 0, 100, 200, true, 1000, 2000)
	m.TowerStatus = [2]int{0, 2047 | 1<<12}
	m.BarracksStatus = [2]int{0, 63 | 1<<7}

	assert.Equal(t, 0, TowersDestroyed(m, match.Radiant))
	assert.Equal(t, 0, BarracksDestroyed(m, match.Radiant))
	assert.Equal(t, 11, TowersDestroyed(m, match.Dire))
	assert.Equal(t, 6, BarracksDestroyed(m, match.Dire))
}

func TestRoshanKills(t *testing.T) {
	tests := []struct {
		name       string
		objectives []match.Objective
		counters   map[int]int
		radiant    int
		dire       int
	}{
		{
			name: "objectiveEventsBySlot",
			objectives: []match.Objective{
				{Type: objectivevalues.RoshanKill, PlayerSlot: intPtr(2)},
				{Type: objectivevalues.RoshanKill, PlayerSlot: intPtr(130)},
				{Type: objectivevalues.RoshanKill, PlayerSlot: intPtr(3)},
			},
			radiant: 2,
			dire:    1,
		},
		{
			name: "objectiveEventsByTeam",
			objectives: []match.Objective{
				{Type: objectivevalues.RoshanKill, Team: intPtr(objectivevalues.TeamDire)},
			},
			radiant: 0,
			dire:    1,
		},
		{
			name: "eventsWinOverCounters",
			objectives: []match.Objective{
				{Type: objectivevalues.RoshanKill, PlayerSlot: intPtr(1)},
			},
			counters: map[int]int{0: 3, 5: 2},
			radiant:  1,
			dire:     0,
		},
		{
			name: "fallbackToPlayerCounters",
			objectives: []match.Objective{
				{Type: objectivevalues.FirstBlood, PlayerSlot: intPtr(1)},
			},
			counters: map[int]int{0: 1, 1: 1, 6: 2},
			radiant:  2,
			dire:     2,
		},
		{
			name:    "nothingRecorded",
			radiant: 0,
			dire:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMatch(1, 0, 0, 100, 200, true, 1000, 2000)
			m.Objectives = tt.objectives
			for idx, kills := range tt.counters {
				m.Players[idx].RoshanKills = kills
			}

			assert.Equal(t, tt.radiant, RoshanKills(m, match.Radiant))
			assert.Equal(t, tt.dire, RoshanKills(m, match.Dire))
		})
	}
}

func TestFirstBloodSide(t *testing.T) {
	m := newTestMatch(1, 0, 0, 100, 200, true, 1000, 2000)

	_, ok := FirstBloodSide(m)
	assert.False(t, ok)

	m.Objectives = []match.Objective{
		{Time: 10, Type: objectivevalues.RoshanKill, PlayerSlot: intPtr(1)},
		{Time: 90, Type: objectivevalues.FirstBlood, PlayerSlot: intPtr(131)},
		{Time: 95, Type: objectivevalues.FirstBlood, PlayerSlot: intPtr(1)},
	}

	side, ok := FirstBloodSide(m)
	assert.True(t, ok)
	assert.Equal(t, match.Dire, side)
}

func TestScoreTeamSide(t *testing.T) {
	rb := DefaultRulebook()
	m := newTestMatch(1, 0, 0, 100, 200, true, 1000, 2000)
	m.TowerStatus = [2]int{2047, 0}
	m.BarracksStatus = [2]int{63, 0}
	m.Objectives = []match.Objective{
		{Type: objectivevalues.FirstBlood, PlayerSlot: intPtr(0)},
		{Type: objectivevalues.RoshanKill, Team: intPtr(objectivevalues.TeamRadiant)},
		{Type: objectivevalues.RoshanKill, Team: intPtr(objectivevalues.TeamRadiant)},
	}

	// 11 towers + 6 barracks + 2 roshans * 3 + first blood 2 + win 2.
	radiant, ok := rb.TeamMatchPoints(m, 100)
	assert.True(t, ok)
	assert.InDelta(t, 27.0, radiant, 1e-9)

	dire, ok := rb.TeamMatchPoints(m, 200)
	assert.True(t, ok)
	assert.InDelta(t, 0.0, dire, 1e-9)

	_, ok = rb.TeamMatchPoints(m, 300)
	assert.False(t, ok)
}
