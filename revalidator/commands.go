package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/fetcher/data"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/aggregator"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/config"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/datekey"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/metrics"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/players"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/redis"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/repositories"

	"github.com/urfave/cli/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DayScorer rebuilds the leaderboard of a day.
type DayScorer interface {
	ScoreDay(ctx context.Context, tournamentID string, dateKey string) (int, error)
}

// Open the database with the environment configuration.
func connect() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't initialize the configuration: %w", err)
	}

	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func newMigrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply the pending database migrations",
		Action: func(c *cli.Context) error {
			cfg, db, err := connect()
			if err != nil {
				return err
			}

			rawDb, err := db.DB()
			if err != nil {
				return fmt.Errorf("couldn't get raw db connection: %w", err)
			}
			return database.RunMigrations(cfg, rawDb)
		},
	}
}

func newTournamentCommand() *cli.Command {
	return &cli.Command{
		Name:  "tournament",
		Usage: "create or update a tournament configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Required: true},
			&cli.StringFlag{Name: "name"},
			&cli.Int64SliceFlag{Name: "league", Usage: "provider league id, repeatable", Required: true},
			&cli.IntFlag{Name: "lock-hour", Usage: "UTC hour lineups lock", Value: 8},
			&cli.IntFlag{Name: "cores", Value: 2},
			&cli.IntFlag{Name: "supports", Value: 2},
			&cli.StringFlag{Name: "rulebook", Usage: "path to a JSON file overriding rulebook fields"},
			&cli.BoolFlag{Name: "inactive"},
		},
		Action: func(c *cli.Context) error {
			tournament, err := tournamentFromFlags(c)
			if err != nil {
				return err
			}

			_, db, err := connect()
			if err != nil {
				return err
			}

			if err := repositories.NewTournamentRepository(db).SaveTournament(c.Context, tournament); err != nil {
				return fmt.Errorf("couldn't save tournament %s: %w", tournament.ID, err)
			}
			log.Printf("Saved tournament %s with leagues %v.", tournament.ID, []int64(tournament.LeagueIDs))
			return nil
		},
	}
}

// tournamentFromFlags builds and validates the configuration before touching the database.
func tournamentFromFlags(c *cli.Context) (*models.Tournament, error) {
	lockHour := c.Int("lock-hour")
	if lockHour < 0 || lockHour > 23 {
		return nil, fmt.Errorf("lock hour %d is outside 0-23", lockHour)
	}

	if c.Int("cores") < 0 || c.Int("supports") < 0 {
		return nil, fmt.Errorf("slot counts can't be negative")
	}

	tournament := &models.Tournament{
		ID:           c.String("id"),
		Name:         c.String("name"),
		LeagueIDs:    datatypes.NewJSONSlice(c.Int64Slice("league")),
		LockHourUTC:  lockHour,
		CoreCount:    c.Int("cores"),
		SupportCount: c.Int("supports"),
		Active:       !c.Bool("inactive"),
	}

	if path := c.String("rulebook"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("couldn't read rulebook %s: %w", path, err)
		}
		if !json.Valid(raw) {
			return nil, fmt.Errorf("rulebook %s is not valid json", path)
		}
		tournament.Rulebook = datatypes.JSON(raw)

		if _, err := tournament.GetRulebook(); err != nil {
			return nil, fmt.Errorf("rulebook %s: %w", path, err)
		}
	}

	return tournament, nil
}

func newRescoreCommand() *cli.Command {
	return &cli.Command{
		Name:  "rescore",
		Usage: "rebuild the leaderboards of a range of days",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "tournament", Required: true},
			&cli.StringFlag{Name: "from", Usage: "first date key, YYYYMMDD", Required: true},
			&cli.StringFlag{Name: "to", Usage: "last date key, defaults to --from"},
		},
		Action: func(c *cli.Context) error {
			days, err := dayRange(c.String("from"), c.String("to"))
			if err != nil {
				return err
			}

			cfg, db, err := connect()
			if err != nil {
				return err
			}

			redisClient := redis.NewClient(cfg)
			defer redisClient.Close()

			appMetrics := metrics.New()
			fetcher := data.CreateMainFetcher(cfg, appMetrics)
			scorer := aggregator.NewService(&aggregator.ServiceDeps{
				MatchRepository:       repositories.NewMatchRepository(db),
				LineupRepository:      repositories.NewLineupRepository(db),
				LeaderboardRepository: repositories.NewLeaderboardRepository(db),
				TournamentRepository:  repositories.NewTournamentRepository(db),
				Names: players.NewResolver(&players.ResolverDeps{
					Redis:      redisClient,
					Repository: repositories.NewPlayerRepository(db),
					Provider:   fetcher.Player,
				}),
				Redis:   redisClient,
				Metrics: appMetrics,
			})

			failed := rescoreDays(c.Context, scorer, c.String("tournament"), days)
			if failed > 0 {
				return fmt.Errorf("%d of %d days failed", failed, len(days))
			}
			return nil
		},
	}
}

// dayRange expands an inclusive range of date keys.
func dayRange(from string, to string) ([]string, error) {
	if to == "" {
		to = from
	}

	if !datekey.Valid(from) || !datekey.Valid(to) {
		return nil, fmt.Errorf("invalid date range %q - %q", from, to)
	}
	if to < from {
		return nil, fmt.Errorf("range end %s is before its start %s", to, from)
	}

	var days []string
	for day := from; day <= to; {
		days = append(days, day)

		next, err := datekey.AddDays(day, 1)
		if err != nil {
			return nil, err
		}
		day = next
	}
	return days, nil
}

// rescoreDays scores every day, a failed day doesn't stop the others.
func rescoreDays(ctx context.Context, scorer DayScorer, tournamentID string, days []string) int {
	failed := 0
	for _, day := range days {
		count, err := scorer.ScoreDay(ctx, tournamentID, day)
		if err != nil {
			log.Printf("Couldn't rescore %s/%s: %v", tournamentID, day, err)
			failed++
			continue
		}
		log.Printf("Rescored %s/%s: %d lineups ranked.", tournamentID, day, count)
	}
	return failed
}
