package ingestservice

import (
	"time"

	matchfetcher "github.com/TheyCallMeKWAM/International-Fantasy-2025/fetcher/data/match"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
)

// Reasons a candidate match is not fetched.
const (
	SkipComplete     = "complete"
	SkipPendingFresh = "pending_fresh"
	SkipTooFresh     = "too_fresh"
	SkipOutOfWindow  = "out_of_window"
)

// FreshnessConfig holds the ages of the freshness guard.
type FreshnessConfig struct {
	LookbackWindow   time.Duration
	FreshUncachedAge time.Duration
	FreshPendingAge  time.Duration
}

// shouldFetch is the freshness guard, run before any detail request.
// An unknown start time never blocks a fetch.
func shouldFetch(cfg FreshnessConfig, cached *models.Match, entry matchfetcher.LeagueMatch, now time.Time) (bool, string) {
	if cached != nil && cached.Complete {
		return false, SkipComplete
	}

	startTime := entry.StartTime
	if cached != nil && cached.StartTime > startTime {
		startTime = cached.StartTime
	}

	if startTime <= 0 {
		return true, ""
	}

	age := now.Sub(time.Unix(startTime, 0))
	if cfg.LookbackWindow > 0 && age > cfg.LookbackWindow {
		return false, SkipOutOfWindow
	}

	// The provider writes the detail progressively, early reads are half empty.
	if cached != nil {
		if age < cfg.FreshPendingAge {
			return false, SkipPendingFresh
		}
		return true, ""
	}

	if age < cfg.FreshUncachedAge {
		return false, SkipTooFresh
	}
	return true, ""
}
