package leaderboardservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/dto"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/aggregator"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/datekey"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/messages"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/repositories"

	"gorm.io/gorm"
)

const (
	LeaderboardMemoryCacheDuration = time.Minute
	LeaderboardRedisCacheDuration  = time.Hour
)

type LeaderboardRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type LeaderboardMemCache interface {
	Get(key string) (*dto.Leaderboard, bool)
	Put(key string, value *dto.Leaderboard)
	Invalidate(key string)
}

// DayScorer rebuilds the leaderboard of a day.
type DayScorer interface {
	ScoreDay(ctx context.Context, tournamentID string, dateKey string) (int, error)
}

// LeaderboardService serves the day standings and the on demand rescoring.
type LeaderboardService struct {
	memCache              LeaderboardMemCache
	redis                 LeaderboardRedisClient
	leaderboardRepository repositories.LeaderboardRepository
	tournamentRepository  repositories.TournamentRepository
	scorer                DayScorer
}

// LeaderboardServiceDeps is the dependency list for the leaderboard service.
type LeaderboardServiceDeps struct {
	MemCache              LeaderboardMemCache
	Redis                 LeaderboardRedisClient
	LeaderboardRepository repositories.LeaderboardRepository
	TournamentRepository  repositories.TournamentRepository
	Scorer                DayScorer
}

// NewLeaderboardService creates a leaderboard service.
func NewLeaderboardService(deps *LeaderboardServiceDeps) *LeaderboardService {
	return &LeaderboardService{
		memCache:              deps.MemCache,
		redis:                 deps.Redis,
		leaderboardRepository: deps.LeaderboardRepository,
		tournamentRepository:  deps.TournamentRepository,
		scorer:                deps.Scorer,
	}
}

// GetLeaderboard returns the last published standings of a day.
// A day that was never aggregated has no entries.
func (ls *LeaderboardService) GetLeaderboard(ctx context.Context, tournamentID string, dateKey string) (*dto.Leaderboard, error) {
	if !datekey.Valid(dateKey) {
		return nil, fmt.Errorf("%w: date key %q", messages.ErrInvalidArgument, dateKey)
	}

	key := aggregator.LeaderboardCacheKey(tournamentID, dateKey)

	if mem, ok := ls.memCache.Get(key); ok {
		return mem, nil
	}

	if redisData := ls.getFromRedis(ctx, key); redisData != nil {
		ls.memCache.Put(key, redisData)
		return redisData, nil
	}

	stored, err := ls.leaderboardRepository.GetLeaderboard(ctx, tournamentID, dateKey)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ls.emptyLeaderboard(ctx, tournamentID, dateKey)
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't get leaderboard of %s/%s: %w", tournamentID, dateKey, err)
	}

	var dtoHelper dto.Leaderboard
	result := dtoHelper.FromModel(stored)

	ls.populateCaches(ctx, key, result)

	return result, nil
}

// RescoreDay recomputes a day immediately. Admin only.
func (ls *LeaderboardService) RescoreDay(ctx context.Context, caller *dto.Caller, tournamentID string, dateKey string) (*dto.RescoreResult, error) {
	if caller == nil || caller.ID == "" {
		return nil, messages.ErrUnauthenticated
	}
	if !caller.Admin {
		return nil, fmt.Errorf("%w: rescoring is admin only", messages.ErrPermissionDenied)
	}

	count, err := ls.scorer.ScoreDay(ctx, tournamentID, dateKey)
	if err != nil {
		return nil, err
	}

	// The aggregator already dropped the redis copy.
	ls.memCache.Invalidate(aggregator.LeaderboardCacheKey(tournamentID, dateKey))

	return &dto.RescoreResult{Count: count}, nil
}

// emptyLeaderboard is only returned for known tournaments and isn't cached.
func (ls *LeaderboardService) emptyLeaderboard(ctx context.Context, tournamentID string, dateKey string) (*dto.Leaderboard, error) {
	_, err := ls.tournamentRepository.GetTournament(ctx, tournamentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: tournament %s", messages.ErrNotFound, tournamentID)
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't get tournament %s: %w", tournamentID, err)
	}

	return &dto.Leaderboard{
		TournamentID: tournamentID,
		DateKey:      dateKey,
		Entries:      []models.LeaderboardEntry{},
	}, nil
}

// getFromRedis retrieves the data from the redis.
func (ls *LeaderboardService) getFromRedis(ctx context.Context, key string) *dto.Leaderboard {
	ctx, cancel := context.WithTimeout(ctx, time.Millisecond*200)
	defer cancel()

	redisCached, err := ls.redis.Get(ctx, key)
	if err != nil || redisCached == "" {
		return nil
	}

	var leaderboard dto.Leaderboard
	if err := json.Unmarshal([]byte(redisCached), &leaderboard); err != nil {
		return nil
	}

	return &leaderboard
}

// populateCaches will set the mem cache and redis cache.
func (ls *LeaderboardService) populateCaches(ctx context.Context, key string, data *dto.Leaderboard) {
	ls.memCache.Put(key, data)

	if j, err := json.Marshal(data); err == nil {
		ls.redis.Set(ctx, key, string(j), LeaderboardRedisCacheDuration)
	}
}
