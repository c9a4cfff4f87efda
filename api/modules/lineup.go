package modules

import (
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/handlers"
	lineupservice "github.com/TheyCallMeKWAM/International-Fantasy-2025/api/services/lineup"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/repositories"
)

func initializeLineupHandler(deps *ModuleDependencies) *handlers.LineupHandler {
	lineupService := lineupservice.NewLineupService(&lineupservice.LineupServiceDeps{
		LineupRepository:     repositories.NewLineupRepository(deps.DB),
		TournamentRepository: repositories.NewTournamentRepository(deps.DB),
		Metrics:              deps.Metrics,
	})

	return handlers.NewLineupHandler(&handlers.LineupHandlerDependencies{
		LineupService: lineupService,
	})
}
