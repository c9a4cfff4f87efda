package scoring

import (
	"testing"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"
	"github.com/stretchr/testify/assert"
)

func TestScorePlayer(t *testing.T) {
	rb := DefaultRulebook()

	tests := []struct {
		name     string
		row      match.PlayerRow
		duration int
		won      bool
		expected float64
	}{
		{
			name:     "emptyRowLost",
			row:      match.PlayerRow{},
			duration: 2000,
			expected: 0,
		},
		{
			name: "allStatsLost",
			// 5*3 + 7*2 - 4 + 300*0.02 + 10*0.02 + 6*0.2 + 4*0.5
			row:      match.PlayerRow{Kills: 5, Assists: 7, Deaths: 4, LastHits: 300, Denies: 10, WardsPlaced: 6, CampsStacked: 4},
			duration: 2000,
			expected: 15 + 14 - 4 + 6 + 0.2 + 1.2 + 2,
		},
		{
			name:     "winAtExactlyTwentyFiveMinutes",
			row:      match.PlayerRow{},
			duration: 1500,
			won:      true,
			expected: 15,
		},
		{
			name:     "winUnderTwentyFiveMinutes",
			row:      match.PlayerRow{},
			duration: 1499,
			won:      true,
			expected: 30,
		},
		{
			name:     "fastLossHasNoBonus",
			row:      match.PlayerRow{},
			duration: 900,
			expected: 0,
		},
		{
			name:     "comboAtThreshold",
			row:      match.PlayerRow{Kills: 10, Assists: 10},
			duration: 2000,
			expected: 30 + 20 + 2,
		},
		{
			name:     "comboBelowThreshold",
			row:      match.PlayerRow{Kills: 10, Assists: 9},
			duration: 2000,
			expected: 30 + 18,
		},
		{
			name:     "deathsOnly",
			row:      match.PlayerRow{Deaths: 12},
			duration: 2000,
			expected: -12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rb.ScorePlayer(tt.row, tt.duration, tt.won)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestScorePlayerExclusiveComboOverride(t *testing.T) {
	threshold := 21
	rb := DefaultRulebook().Apply(&Overrides{ComboThreshold: &threshold})

	assert.InDelta(t, 50.0, rb.ScorePlayer(match.PlayerRow{Kills: 10, Assists: 10}, 2000, false), 1e-9)
}

func TestPlayerMatchPoints(t *testing.T) {
	rb := DefaultRulebook()
	m := newTestMatch(1, 10, 1, 100, 200, true, 1000, 2000)
	m.Players[0].Kills = 2
	m.Players[5].Kills = 2

	radiant, ok := rb.PlayerMatchPoints(m, 1000)
	assert.True(t, ok)
	assert.InDelta(t, 6.0+15, radiant, 1e-9)

	dire, ok := rb.PlayerMatchPoints(m, 2000)
	assert.True(t, ok)
	assert.InDelta(t, 6.0, dire, 1e-9)

	_, ok = rb.PlayerMatchPoints(m, 999)
	assert.False(t, ok)
}

func TestApplyNilOverrides(t *testing.T) {
	assert.Equal(t, DefaultRulebook(), DefaultRulebook().Apply(nil))
}

func TestApplyOverridesDoesNotLeak(t *testing.T) {
	bonus := 30.0
	base := DefaultRulebook()
	variant := base.Apply(&Overrides{SweepTeamBonus: &bonus, SweepPlayerBonus: &bonus})

	assert.Equal(t, 30.0, variant.SweepTeamBonus)
	assert.Equal(t, 30.0, variant.SweepPlayerBonus)
	assert.Equal(t, 15.0, base.SweepTeamBonus)
	assert.Equal(t, 15.0, DefaultRulebook().SweepPlayerBonus)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 6.2, Round(0.1+6.1))
	assert.Equal(t, 60.0, Round(40*1.5))
}
