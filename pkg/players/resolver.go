package players

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/redis"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/repositories"
)

const (
	nameKeyPrefix = "player:name:"
	nameTTL       = 24 * time.Hour
)

// NameProvider fetches a display name from the match provider.
type NameProvider interface {
	GetPlayerName(ctx context.Context, accountID int64) (string, error)
}

// Resolver finds player display names.
// Lookup order is redis, the local table, the provider and finally the stringified id.
type Resolver struct {
	redis      *redis.RedisClient
	repository repositories.PlayerRepository
	provider   NameProvider
}

type ResolverDeps struct {
	Redis      *redis.RedisClient
	Repository repositories.PlayerRepository
	Provider   NameProvider
}

func NewResolver(deps *ResolverDeps) *Resolver {
	return &Resolver{
		redis:      deps.Redis,
		repository: deps.Repository,
		provider:   deps.Provider,
	}
}

func nameKey(accountID int64) string {
	return nameKeyPrefix + strconv.FormatInt(accountID, 10)
}

// Remember stores the names reported on match rows.
func (r *Resolver) Remember(ctx context.Context, rows []match.PlayerRow) error {
	names := make([]*models.PlayerName, 0, len(rows))
	for _, row := range rows {
		if row.AccountID == 0 || row.Name == "" {
			continue
		}
		names = append(names, &models.PlayerName{AccountID: row.AccountID, Name: row.Name})
	}

	if len(names) == 0 {
		return nil
	}

	if err := r.repository.SavePlayerNames(ctx, names); err != nil {
		return fmt.Errorf("couldn't save player names: %w", err)
	}
	return nil
}

// ResolveNames returns a name for every id, never failing.
// Names already known by the caller are used as is.
func (r *Resolver) ResolveNames(ctx context.Context, accountIDs []int64, known map[int64]string) map[int64]string {
	result := make(map[int64]string, len(accountIDs))
	missing := make([]int64, 0, len(accountIDs))
	for _, id := range accountIDs {
		if _, ok := result[id]; ok {
			continue
		}
		if name := known[id]; name != "" {
			result[id] = name
			continue
		}
		result[id] = ""
		missing = append(missing, id)
	}

	missing = r.fromRedis(ctx, missing, result)
	missing = r.fromDatabase(ctx, missing, result)
	missing = r.fromProvider(ctx, missing, result)

	for _, id := range missing {
		result[id] = strconv.FormatInt(id, 10)
	}
	return result
}

func (r *Resolver) fromRedis(ctx context.Context, ids []int64, result map[int64]string) []int64 {
	if r.redis == nil || len(ids) == 0 {
		return ids
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = nameKey(id)
	}

	redisCtx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
	defer cancel()

	values, err := r.redis.MGet(redisCtx, keys...).Result()
	if err != nil {
		log.Printf("Couldn't read player names from redis: %v", err)
		return ids
	}

	remaining := ids[:0:0]
	for i, value := range values {
		if name, ok := value.(string); ok && name != "" {
			result[ids[i]] = name
			continue
		}
		remaining = append(remaining, ids[i])
	}
	return remaining
}

func (r *Resolver) fromDatabase(ctx context.Context, ids []int64, result map[int64]string) []int64 {
	if r.repository == nil || len(ids) == 0 {
		return ids
	}

	names, err := r.repository.GetPlayerNames(ctx, ids)
	if err != nil {
		log.Printf("Couldn't read player names from the database: %v", err)
		return ids
	}

	remaining := ids[:0:0]
	for _, id := range ids {
		if name, ok := names[id]; ok {
			result[id] = name
			r.cache(ctx, id, name)
			continue
		}
		remaining = append(remaining, id)
	}
	return remaining
}

func (r *Resolver) fromProvider(ctx context.Context, ids []int64, result map[int64]string) []int64 {
	if r.provider == nil || len(ids) == 0 {
		return ids
	}

	remaining := ids[:0:0]
	discovered := make([]*models.PlayerName, 0, len(ids))
	for _, id := range ids {
		name, err := r.provider.GetPlayerName(ctx, id)
		if err != nil || name == "" {
			if err != nil {
				log.Printf("Couldn't fetch the name of player %d: %v", id, err)
			}
			remaining = append(remaining, id)
			continue
		}

		result[id] = name
		r.cache(ctx, id, name)
		discovered = append(discovered, &models.PlayerName{AccountID: id, Name: name})
	}

	if len(discovered) > 0 && r.repository != nil {
		if err := r.repository.SavePlayerNames(ctx, discovered); err != nil {
			log.Printf("Couldn't save discovered player names: %v", err)
		}
	}
	return remaining
}

func (r *Resolver) cache(ctx context.Context, accountID int64, name string) {
	if r.redis == nil {
		return
	}

	redisCtx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
	defer cancel()

	if err := r.redis.Set(redisCtx, nameKey(accountID), name, nameTTL); err != nil {
		log.Printf("Couldn't cache the name of player %d: %v", accountID, err)
	}
}
