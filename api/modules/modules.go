package modules

import (
	"time"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/auth"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/cache"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/dto"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/handlers"
	leaderboardservice "github.com/TheyCallMeKWAM/International-Fantasy-2025/api/services/leaderboard"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/config"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/metrics"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ModuleDependencies is shared by every handler initializer.
type ModuleDependencies struct {
	Config   *config.Config
	DB       *gorm.DB
	Redis    *redis.RedisClient
	MemCache *cache.MemCache[*dto.Leaderboard]
	Metrics  *metrics.Metrics
}

// Module containing the necessary handlers.
type Module struct {
	Router             *gin.Engine
	Verifier           *auth.Verifier
	MemCache           *cache.MemCache[*dto.Leaderboard]
	Metrics            *metrics.Metrics
	LineupHandler      *handlers.LineupHandler
	LeaderboardHandler *handlers.LeaderboardHandler
}

// NewModule creates a new module with all the necessary handlers initialized.
func NewModule(cfg *config.Config, db *gorm.DB, redisClient *redis.RedisClient) *Module {
	deps := &ModuleDependencies{
		Config:   cfg,
		DB:       db,
		Redis:    redisClient,
		MemCache: cache.NewMemCache[*dto.Leaderboard](leaderboardservice.LeaderboardMemoryCacheDuration, 5*time.Minute),
		Metrics:  metrics.New(),
	}

	return &Module{
		Router:             gin.Default(),
		Verifier:           auth.NewVerifier(cfg.Auth.JWTSecret),
		MemCache:           deps.MemCache,
		Metrics:            deps.Metrics,
		LineupHandler:      initializeLineupHandler(deps),
		LeaderboardHandler: initializeLeaderboardHandler(deps),
	}
}

// Close the background workers.
func (m *Module) Close() {
	m.MemCache.Close()
}
