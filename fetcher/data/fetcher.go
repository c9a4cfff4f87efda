package data

import (
	matchfetcher "github.com/TheyCallMeKWAM/International-Fantasy-2025/fetcher/data/match"
	playerfetcher "github.com/TheyCallMeKWAM/International-Fantasy-2025/fetcher/data/player"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/fetcher/requests"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/config"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/metrics"
)

// Define a main fetcher.
type MainFetcher struct {
	Player *playerfetcher.PlayerFetcher
	Match  *matchfetcher.MatchFetcher
}

// Function to instanciate the main fetcher.
// Every endpoint shares the same limiter, the provider quota is global.
func CreateMainFetcher(cfg *config.Config, appMetrics *metrics.Metrics) *MainFetcher {
	limiter := requests.CreateRateLimiter(cfg.Provider.FetchDelay)
	client := requests.NewClient(cfg, limiter, appMetrics)

	return &MainFetcher{
		Player: playerfetcher.CreatePlayerFetcher(client),
		Match:  matchfetcher.CreateMatchFetcher(client),
	}
}
