package modules

import (
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/handlers"
	leaderboardservice "github.com/TheyCallMeKWAM/International-Fantasy-2025/api/services/leaderboard"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/fetcher/data"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/aggregator"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/players"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/repositories"
)

func initializeLeaderboardHandler(deps *ModuleDependencies) *handlers.LeaderboardHandler {
	leaderboardRepository := repositories.NewLeaderboardRepository(deps.DB)
	tournamentRepository := repositories.NewTournamentRepository(deps.DB)

	// Rescoring resolves missing names against the provider like the poller does.
	fetcher := data.CreateMainFetcher(deps.Config, deps.Metrics)
	resolver := players.NewResolver(&players.ResolverDeps{
		Redis:      deps.Redis,
		Repository: repositories.NewPlayerRepository(deps.DB),
		Provider:   fetcher.Player,
	})

	scorer := aggregator.NewService(&aggregator.ServiceDeps{
		MatchRepository:       repositories.NewMatchRepository(deps.DB),
		LineupRepository:      repositories.NewLineupRepository(deps.DB),
		LeaderboardRepository: leaderboardRepository,
		TournamentRepository:  tournamentRepository,
		Names:                 resolver,
		Redis:                 deps.Redis,
		Metrics:               deps.Metrics,
	})

	leaderboardService := leaderboardservice.NewLeaderboardService(&leaderboardservice.LeaderboardServiceDeps{
		MemCache:              deps.MemCache,
		Redis:                 deps.Redis,
		LeaderboardRepository: leaderboardRepository,
		TournamentRepository:  tournamentRepository,
		Scorer:                scorer,
	})

	return handlers.NewLeaderboardHandler(&handlers.LeaderboardHandlerDependencies{
		LeaderboardService: leaderboardService,
	})
}
