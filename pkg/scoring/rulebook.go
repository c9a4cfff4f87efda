package scoring

import "math"

// Rulebook holds every weight used to turn telemetry into points.
// It is a plain value: copy it freely, never share it through a package variable.
type Rulebook struct {
	Version string `json:"version"`

	// Player weights.
	Kill        float64 `json:"kill"`
	Assist      float64 `json:"assist"`
	Death       float64 `json:"death"`
	LastHit     float64 `json:"last_hit"`
	Deny        float64 `json:"deny"`
	WardPlaced  float64 `json:"ward_placed"`
	CampStacked float64 `json:"camp_stacked"`

	// Player bonuses.
	WinBonus       float64 `json:"win_bonus"`
	FastWinBonus   float64 `json:"fast_win_bonus"`
	FastWinSeconds int     `json:"fast_win_seconds"`
	ComboBonus     float64 `json:"combo_bonus"`
	ComboThreshold int     `json:"combo_threshold"`

	// Team side weights.
	Tower      float64 `json:"tower"`
	Barracks   float64 `json:"barracks"`
	Roshan     float64 `json:"roshan"`
	FirstBlood float64 `json:"first_blood"`
	TeamWin    float64 `json:"team_win"`

	// Lineup level modifiers.
	CaptainMultiplier float64 `json:"captain_multiplier"`
	SweepTeamBonus    float64 `json:"sweep_team_bonus"`
	SweepPlayerBonus  float64 `json:"sweep_player_bonus"`
}

// DefaultRulebook returns the standard rulebook.
// The combo bonus is inclusive (kills+assists >= 20) and sweeps are worth 15.
func DefaultRulebook() Rulebook {
	return Rulebook{
		Version: "2025",

		Kill:        3,
		Assist:      2,
		Death:       -1,
		LastHit:     0.02,
		Deny:        0.02,
		WardPlaced:  0.2,
		CampStacked: 0.5,

		WinBonus:       15,
		FastWinBonus:   15,
		FastWinSeconds: 1500,
		ComboBonus:     2,
		ComboThreshold: 20,

		Tower:      1,
		Barracks:   1,
		Roshan:     3,
		FirstBlood: 2,
		TeamWin:    2,

		CaptainMultiplier: 1.5,
		SweepTeamBonus:    15,
		SweepPlayerBonus:  15,
	}
}

// Overrides are the optional per-tournament changes to the default rulebook.
// Nil fields keep the base value.
type Overrides struct {
	Version           *string  `json:"version,omitempty"`
	WinBonus          *float64 `json:"win_bonus,omitempty"`
	FastWinBonus      *float64 `json:"fast_win_bonus,omitempty"`
	ComboThreshold    *int     `json:"combo_threshold,omitempty"`
	CaptainMultiplier *float64 `json:"captain_multiplier,omitempty"`
	SweepTeamBonus    *float64 `json:"sweep_team_bonus,omitempty"`
	SweepPlayerBonus  *float64 `json:"sweep_player_bonus,omitempty"`
}

// Apply returns a copy of the rulebook with the overrides set.
func (r Rulebook) Apply(o *Overrides) Rulebook {
	if o == nil {
		return r
	}

	if o.Version != nil {
		r.Version = *o.Version
	}
	if o.WinBonus != nil {
		r.WinBonus = *o.WinBonus
	}
	if o.FastWinBonus != nil {
		r.FastWinBonus = *o.FastWinBonus
	}
	if o.ComboThreshold != nil {
		r.ComboThreshold = *o.ComboThreshold
	}
	if o.CaptainMultiplier != nil {
		r.CaptainMultiplier = *o.CaptainMultiplier
	}
	if o.SweepTeamBonus != nil {
		r.SweepTeamBonus = *o.SweepTeamBonus
	}
	if o.SweepPlayerBonus != nil {
		r.SweepPlayerBonus = *o.SweepPlayerBonus
	}

	return r
}

// Round keeps two decimals, enough for the 0.02 weights.
func Round(points float64) float64 {
	return math.Round(points*100) / 100
}
