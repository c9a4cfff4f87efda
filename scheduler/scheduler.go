package main

import (
	"context"
	"log"
	"time"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/fetcher/data"
	ingestservice "github.com/TheyCallMeKWAM/International-Fantasy-2025/fetcher/services/ingest"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/aggregator"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/config"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/logger"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/metrics"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/players"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/redis"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/repositories"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/scheduler/jobs"

	"github.com/go-co-op/gocron/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		log.Fatal(err)
	}

	// Runs the migrations.
	rawDb, err := db.DB()
	if err != nil {
		log.Fatalf("Couldn't get raw db connection: %v", err)
	}

	if err := database.RunMigrations(cfg, rawDb); err != nil {
		log.Fatal(err)
	}

	redisClient := redis.NewClient(cfg)
	defer redisClient.Close()

	runLogger, err := logger.CreateLogger()
	if err != nil {
		log.Fatalf("Couldn't create the run logger: %v", err)
	}
	defer runLogger.Close()

	appMetrics := metrics.New()
	fetcher := data.CreateMainFetcher(cfg, appMetrics)

	matchRepository := repositories.NewMatchRepository(db)
	lineupRepository := repositories.NewLineupRepository(db)
	tournamentRepository := repositories.NewTournamentRepository(db)

	resolver := players.NewResolver(&players.ResolverDeps{
		Redis:      redisClient,
		Repository: repositories.NewPlayerRepository(db),
		Provider:   fetcher.Player,
	})

	scorer := aggregator.NewService(&aggregator.ServiceDeps{
		MatchRepository:       matchRepository,
		LineupRepository:      lineupRepository,
		LeaderboardRepository: repositories.NewLeaderboardRepository(db),
		TournamentRepository:  tournamentRepository,
		Names:                 resolver,
		Redis:                 redisClient,
		Metrics:               appMetrics,
	})

	ingester := ingestservice.NewIngestService(&ingestservice.IngestServiceDeps{
		Config:               cfg,
		Provider:             fetcher.Match,
		MatchRepository:      matchRepository,
		TournamentRepository: tournamentRepository,
		Scorer:               scorer,
		Names:                resolver,
		Metrics:              appMetrics,
		Logger:               runLogger,
	})

	scheduledJobs := jobs.NewJobs(&jobs.JobsDeps{
		Config:               cfg,
		Ingester:             ingester,
		Scorer:               scorer,
		LineupRepository:     lineupRepository,
		MatchRepository:      matchRepository,
		TournamentRepository: tournamentRepository,
		Logger:               runLogger,
		Metrics:              appMetrics,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Println("Starting scheduler.")

	// Create a new scheduler with options.
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
		gocron.WithLogger(gocron.NewLogger(gocron.LogLevelInfo)),
	)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	// Poll the provider. A slow run pushes the next one instead of overlapping it.
	_, err = s.NewJob(
		gocron.DurationJob(cfg.Poller.Interval),
		gocron.NewTask(scheduledJobs.Ingest),
		gocron.WithName("match-ingestion"),
		gocron.WithTags("ingest"),
		gocron.WithContext(ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Fatalf("Failed to create ingestion job: %v", err)
	}

	// Lock the lineups at the top of every hour.
	_, err = s.NewJob(
		gocron.CronJob("0 * * * *", false),
		gocron.NewTask(scheduledJobs.LockSweep),
		gocron.WithName("lineup-lock-sweep"),
		gocron.WithTags("lineups"),
		gocron.WithContext(ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Fatalf("Failed to create lock sweep job: %v", err)
	}

	// Republish the locked days shortly after every sweep.
	_, err = s.NewJob(
		gocron.CronJob("5,35 * * * *", false),
		gocron.NewTask(scheduledJobs.ScoreLockedDays),
		gocron.WithName("locked-day-scoring"),
		gocron.WithTags("aggregation"),
		gocron.WithContext(ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Fatalf("Failed to create scoring job: %v", err)
	}

	// Purge old matches once per day at 3:00 AM.
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(3, 0, 0),
			),
		),
		gocron.NewTask(scheduledJobs.Retention),
		gocron.WithName("match-retention"),
		gocron.WithTags("retention"),
		gocron.WithContext(ctx),
	)
	if err != nil {
		log.Fatalf("Failed to create retention job: %v", err)
	}

	grpcServer, healthServer := startGRPCServer(cfg.HTTP.GRPCAddr)
	metricsServer := startMetricsServer(cfg.HTTP.MetricsAddr, appMetrics)

	// Start the scheduler.
	s.Start()

	handleShutdown(s, grpcServer, healthServer, metricsServer, cancel)
}
