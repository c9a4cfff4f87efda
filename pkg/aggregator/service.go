package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/datekey"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/messages"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/metrics"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/redis"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LeaderboardCacheKey is the redis key of a day's leaderboard.
func LeaderboardCacheKey(tournamentID string, dateKey string) string {
	return fmt.Sprintf("leaderboard:%s:%s", tournamentID, dateKey)
}

// NameResolver resolves player display names.
type NameResolver interface {
	ResolveNames(ctx context.Context, accountIDs []int64, known map[int64]string) map[int64]string
}

// Service builds and publishes day leaderboards.
type Service struct {
	matchRepository       repositories.MatchRepository
	lineupRepository      repositories.LineupRepository
	leaderboardRepository repositories.LeaderboardRepository
	tournamentRepository  repositories.TournamentRepository
	names                 NameResolver
	redis                 *redis.RedisClient
	metrics               *metrics.Metrics
	now                   func() time.Time

	// Runs of the same day are serialized, different days run freely.
	locksMu  sync.Mutex
	dayLocks map[string]*sync.Mutex
}

type ServiceDeps struct {
	MatchRepository       repositories.MatchRepository
	LineupRepository      repositories.LineupRepository
	LeaderboardRepository repositories.LeaderboardRepository
	TournamentRepository  repositories.TournamentRepository
	Names                 NameResolver
	Redis                 *redis.RedisClient
	Metrics               *metrics.Metrics
}

func NewService(deps *ServiceDeps) *Service {
	return &Service{
		matchRepository:       deps.MatchRepository,
		lineupRepository:      deps.LineupRepository,
		leaderboardRepository: deps.LeaderboardRepository,
		tournamentRepository:  deps.TournamentRepository,
		names:                 deps.Names,
		redis:                 deps.Redis,
		metrics:               deps.Metrics,
		now:                   time.Now,
		dayLocks:              make(map[string]*sync.Mutex),
	}
}

func (s *Service) dayLock(key string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, ok := s.dayLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.dayLocks[key] = lock
	}
	return lock
}

// ScoreDay recomputes the leaderboard of a tournament day and replaces the stored one.
// Returns the number of ranked lineups.
func (s *Service) ScoreDay(ctx context.Context, tournamentID string, dateKey string) (int, error) {
	if !datekey.Valid(dateKey) {
		return 0, fmt.Errorf("%w: date key %q", messages.ErrInvalidArgument, dateKey)
	}

	tournament, err := s.tournamentRepository.GetTournament(ctx, tournamentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: tournament %s", messages.ErrNotFound, tournamentID)
	}
	if err != nil {
		return 0, fmt.Errorf("couldn't get tournament %s: %w", tournamentID, err)
	}

	rulebook, err := tournament.GetRulebook()
	if err != nil {
		return 0, err
	}

	lock := s.dayLock(LeaderboardCacheKey(tournamentID, dateKey))
	lock.Lock()
	defer lock.Unlock()

	start := s.now()
	count, err := s.scoreDay(ctx, &Day{Rulebook: rulebook}, tournamentID, dateKey)
	if s.metrics != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		s.metrics.Aggregations.WithLabelValues(outcome).Inc()
		s.metrics.AggregationDuration.Observe(s.now().Sub(start).Seconds())
	}

	return count, err
}

func (s *Service) scoreDay(ctx context.Context, day *Day, tournamentID string, dateKey string) (int, error) {
	rows, err := s.matchRepository.GetMatchesByDay(ctx, tournamentID, dateKey, true)
	if err != nil {
		return 0, fmt.Errorf("couldn't get matches of %s/%s: %w", tournamentID, dateKey, err)
	}

	lineups, err := s.lineupRepository.GetLineupsByDay(ctx, tournamentID, dateKey)
	if err != nil {
		return 0, fmt.Errorf("couldn't get lineups of %s/%s: %w", tournamentID, dateKey, err)
	}

	day.Matches = make([]*match.Match, 0, len(rows))
	for _, row := range rows {
		day.Matches = append(day.Matches, row.ToDomain())
	}
	day.Lineups = lineups

	knownPlayers, knownTeams := KnownNames(day.Matches)
	day.TeamNames = knownTeams
	day.PlayerNames = knownPlayers
	if s.names != nil {
		day.PlayerNames = s.names.ResolveNames(ctx, pickedPlayers(lineups), knownPlayers)
	}

	entries := BuildLeaderboard(day)

	leaderboard := &models.Leaderboard{
		TournamentID:  tournamentID,
		DateKey:       dateKey,
		Entries:       datatypes.JSONSlice[models.LeaderboardEntry](entries),
		MatchesScored: len(day.Matches),
		RulebookVer:   day.Rulebook.Version,
		UpdatedAt:     s.now().UTC(),
	}
	if err := s.leaderboardRepository.SaveLeaderboard(ctx, leaderboard); err != nil {
		return 0, fmt.Errorf("couldn't save leaderboard of %s/%s: %w", tournamentID, dateKey, err)
	}

	// Readers fall back to the database on the next request.
	if s.redis != nil {
		if err := s.redis.Del(ctx, LeaderboardCacheKey(tournamentID, dateKey)); err != nil {
			log.Printf("Couldn't invalidate leaderboard cache of %s/%s: %v", tournamentID, dateKey, err)
		}
	}

	return len(entries), nil
}

// pickedPlayers returns every distinct player picked on the lineups, in pick order.
func pickedPlayers(lineups []*models.Lineup) []int64 {
	seen := make(map[int64]bool)
	ids := make([]int64, 0)
	for _, lineup := range lineups {
		for _, id := range lineup.PlayerIDs() {
			if id == 0 || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}
