package ingestservice

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	matchfetcher "github.com/TheyCallMeKWAM/International-Fantasy-2025/fetcher/data/match"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/config"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/datekey"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/logger"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/metrics"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/repositories"
	"golang.org/x/sync/errgroup"
)

// MatchProvider is the source of league lists and match details.
type MatchProvider interface {
	GetLeagueMatches(ctx context.Context, leagueID int64) ([]matchfetcher.LeagueMatch, error)
	GetMatchData(ctx context.Context, matchID int64) (*matchfetcher.MatchDetail, error)
}

// DayScorer rebuilds the leaderboard of a day.
type DayScorer interface {
	ScoreDay(ctx context.Context, tournamentID string, dateKey string) (int, error)
}

// NameRecorder keeps the player names seen on match rows.
type NameRecorder interface {
	Remember(ctx context.Context, rows []match.PlayerRow) error
}

// Day identifies a tournament day.
type Day struct {
	TournamentID string
	DateKey      string
}

// RunResult summarizes a single ingestion run.
type RunResult struct {
	Fetched   int
	Skipped   int
	Failed    int
	Completed []Day
	Scored    []Day
}

// IngestService pulls the league matches of every active tournament into the cache.
type IngestService struct {
	freshness            FreshnessConfig
	scoreConcurrency     int
	provider             MatchProvider
	matchRepository      repositories.MatchRepository
	tournamentRepository repositories.TournamentRepository
	scorer               DayScorer
	names                NameRecorder
	metrics              *metrics.Metrics
	logger               *logger.NewLogger
	now                  func() time.Time
}

type IngestServiceDeps struct {
	Config               *config.Config
	Provider             MatchProvider
	MatchRepository      repositories.MatchRepository
	TournamentRepository repositories.TournamentRepository
	Scorer               DayScorer
	Names                NameRecorder
	Metrics              *metrics.Metrics
	Logger               *logger.NewLogger
}

func NewIngestService(deps *IngestServiceDeps) *IngestService {
	return &IngestService{
		freshness: FreshnessConfig{
			LookbackWindow:   deps.Config.Poller.LookbackWindow,
			FreshUncachedAge: deps.Config.Poller.FreshUncachedAge,
			FreshPendingAge:  deps.Config.Poller.FreshPendingAge,
		},
		scoreConcurrency:     2,
		provider:             deps.Provider,
		matchRepository:      deps.MatchRepository,
		tournamentRepository: deps.TournamentRepository,
		scorer:               deps.Scorer,
		names:                deps.Names,
		metrics:              deps.Metrics,
		logger:               deps.Logger,
		now:                  time.Now,
	}
}

// runState collects what happened during a run.
type runState struct {
	result    RunResult
	completed map[Day]bool
}

func (rs *runState) markCompleted(day Day) {
	if rs.completed[day] {
		return
	}
	rs.completed[day] = true
	rs.result.Completed = append(rs.result.Completed, day)
}

// Run processes every league of every active tournament and scores the days that gained a complete match.
// Failures are isolated per league, per match and per day.
func (s *IngestService) Run(ctx context.Context) (*RunResult, error) {
	tournaments, err := s.tournamentRepository.GetActiveTournaments(ctx)
	if err != nil {
		return nil, fmt.Errorf("couldn't get the active tournaments: %w", err)
	}

	state := &runState{completed: make(map[Day]bool)}
	for _, tournament := range tournaments {
		for _, leagueID := range tournament.LeagueIDs {
			if ctx.Err() != nil {
				return &state.result, ctx.Err()
			}

			if err := s.ingestLeague(ctx, state, tournament, leagueID); err != nil {
				state.result.Failed++
				s.unitFailed("league")
				s.logger.Errorf("League %d of %s failed: %v", leagueID, tournament.ID, err)
			}
		}
	}

	state.result.Scored = s.scoreDays(ctx, state.result.Completed)

	s.logger.Infof(
		"Run finished: %d fetched, %d skipped, %d failed, %d days completed, %d days scored",
		state.result.Fetched, state.result.Skipped, state.result.Failed,
		len(state.result.Completed), len(state.result.Scored),
	)
	return &state.result, nil
}

// ingestLeague runs the freshness guard over the league list and upserts what passes it.
func (s *IngestService) ingestLeague(ctx context.Context, state *runState, tournament *models.Tournament, leagueID int64) error {
	entries, err := s.provider.GetLeagueMatches(ctx, leagueID)
	if err != nil {
		return err
	}

	entries = newestFirst(entries)
	ids := make([]int64, len(entries))
	for i, entry := range entries {
		ids[i] = entry.MatchID
	}

	cached, err := s.matchRepository.GetMatchesByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("couldn't read the cached matches: %w", err)
	}

	now := s.now()
	for _, entry := range entries {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fetch, reason := shouldFetch(s.freshness, cached[entry.MatchID], entry, now)
		if !fetch {
			state.result.Skipped++
			if s.metrics != nil {
				s.metrics.MatchesSkipped.WithLabelValues(reason).Inc()
			}
			continue
		}

		if err := s.ingestMatch(ctx, state, tournament, entry); err != nil {
			state.result.Failed++
			s.unitFailed("match")
			s.logger.Errorf("Match %d of %s failed: %v", entry.MatchID, tournament.ID, err)
		}
	}

	return nil
}

// ingestMatch fetches, projects and upserts a single match.
func (s *IngestService) ingestMatch(ctx context.Context, state *runState, tournament *models.Tournament, entry matchfetcher.LeagueMatch) error {
	detail, err := s.provider.GetMatchData(ctx, entry.MatchID)
	if err != nil {
		return err
	}
	state.result.Fetched++

	projection, err := detail.Project(tournament.ID)
	if err != nil {
		return err
	}
	row := projection.Match

	// The list entry fills what the detail left out.
	if row.StartTime == 0 && entry.StartTime > 0 {
		row.StartTime = entry.StartTime
		row.DateKey = datekey.FromUnix(entry.StartTime)
	}
	if row.SeriesID == 0 {
		row.SeriesID = entry.SeriesID
		row.SeriesType = entry.SeriesType
	}

	if projection.Quarantined > 0 {
		s.logger.Warnf("Match %d: %d player rows without account id quarantined", row.MatchID, projection.Quarantined)
		if s.metrics != nil {
			s.metrics.QuarantinedRows.Add(float64(projection.Quarantined))
		}
	}

	upserted, err := s.matchRepository.UpsertMatch(ctx, row)
	if err != nil {
		return fmt.Errorf("couldn't upsert: %w", err)
	}

	if s.metrics != nil {
		s.metrics.MatchesUpserted.WithLabelValues(fmt.Sprint(row.Complete)).Inc()
	}

	if s.names != nil {
		if err := s.names.Remember(ctx, row.Players); err != nil {
			s.logger.Errorf("Match %d: %v", row.MatchID, err)
		}
	}

	// The stored row may know the day when this projection doesn't.
	if upserted.BecameComplete && upserted.DateKey != "" {
		if s.metrics != nil {
			s.metrics.NewlyCompleted.Inc()
		}
		state.markCompleted(Day{TournamentID: tournament.ID, DateKey: upserted.DateKey})
	}

	return nil
}

// scoreDays runs the aggregation once per completed day.
// A failing day is logged and doesn't stop the others.
func (s *IngestService) scoreDays(ctx context.Context, days []Day) []Day {
	ordered := make([]Day, len(days))
	copy(ordered, days)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].TournamentID != ordered[j].TournamentID {
			return ordered[i].TournamentID < ordered[j].TournamentID
		}
		return ordered[i].DateKey < ordered[j].DateKey
	})

	var (
		mu     sync.Mutex
		scored = make([]Day, 0, len(ordered))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.scoreConcurrency)

	for _, day := range ordered {
		g.Go(func() error {
			count, err := s.scorer.ScoreDay(gctx, day.TournamentID, day.DateKey)
			if err != nil {
				s.unitFailed("day")
				s.logger.Errorf("Scoring %s/%s failed: %v", day.TournamentID, day.DateKey, err)
				return nil
			}

			s.logger.Infof("Scored %s/%s with %d lineups", day.TournamentID, day.DateKey, count)
			mu.Lock()
			scored = append(scored, day)
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].TournamentID != scored[j].TournamentID {
			return scored[i].TournamentID < scored[j].TournamentID
		}
		return scored[i].DateKey < scored[j].DateKey
	})
	return scored
}

func (s *IngestService) unitFailed(unit string) {
	if s.metrics != nil {
		s.metrics.IngestUnitErrors.WithLabelValues(unit).Inc()
	}
}

// newestFirst sorts the provider list and drops repeated ids.
func newestFirst(entries []matchfetcher.LeagueMatch) []matchfetcher.LeagueMatch {
	sorted := make([]matchfetcher.LeagueMatch, 0, len(entries))
	seen := make(map[int64]bool, len(entries))
	for _, entry := range entries {
		if entry.MatchID == 0 || seen[entry.MatchID] {
			continue
		}
		seen[entry.MatchID] = true
		sorted = append(sorted, entry)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].StartTime != sorted[j].StartTime {
			return sorted[i].StartTime > sorted[j].StartTime
		}
		return sorted[i].MatchID > sorted[j].MatchID
	})
	return sorted
}
