package jobs

import (
	"context"
	"time"

	ingestservice "github.com/TheyCallMeKWAM/International-Fantasy-2025/fetcher/services/ingest"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/config"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/logger"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/metrics"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/repositories"
)

// Ingester runs one ingestion pass.
type Ingester interface {
	Run(ctx context.Context) (*ingestservice.RunResult, error)
}

// DayScorer rebuilds the leaderboard of a day.
type DayScorer interface {
	ScoreDay(ctx context.Context, tournamentID string, dateKey string) (int, error)
}

// Jobs holds everything the periodic tasks need.
type Jobs struct {
	config               *config.Config
	ingester             Ingester
	scorer               DayScorer
	lineupRepository     repositories.LineupRepository
	matchRepository      repositories.MatchRepository
	tournamentRepository repositories.TournamentRepository
	logger               *logger.NewLogger
	metrics              *metrics.Metrics
	now                  func() time.Time
}

type JobsDeps struct {
	Config               *config.Config
	Ingester             Ingester
	Scorer               DayScorer
	LineupRepository     repositories.LineupRepository
	MatchRepository      repositories.MatchRepository
	TournamentRepository repositories.TournamentRepository
	Logger               *logger.NewLogger
	Metrics              *metrics.Metrics
}

func NewJobs(deps *JobsDeps) *Jobs {
	return &Jobs{
		config:               deps.Config,
		ingester:             deps.Ingester,
		scorer:               deps.Scorer,
		lineupRepository:     deps.LineupRepository,
		matchRepository:      deps.MatchRepository,
		tournamentRepository: deps.TournamentRepository,
		logger:               deps.Logger,
		metrics:              deps.Metrics,
		now:                  time.Now,
	}
}
