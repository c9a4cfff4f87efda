package redis

import (
	"context"
	"time"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/config"
	"github.com/redis/go-redis/v9"
)

// Nil is returned by Get when the key doesn't exist.
const Nil = redis.Nil

// Type for the client.
type RedisClient struct {
	*redis.Client
}

// NewClient creates the client for the configured instance.
func NewClient(cfg *config.Config) *RedisClient {
	return NewClientWithAddr(cfg.Redis.Host+":"+cfg.Redis.Port, cfg.Redis.Password)
}

// NewClientWithAddr creates a client for a specific address.
func NewClientWithAddr(addr string, password string) *RedisClient {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		MaxRetries:   3,
		PoolSize:     50,
		MinIdleConns: 5,
		PoolTimeout:  30 * time.Second,
	})

	return &RedisClient{
		Client: client,
	}
}

// Close the client connection.
func (r *RedisClient) Close() error {
	return r.Client.Close()
}

// Wrapper to return the Result directly.
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return r.Client.Get(ctx, key).Result()
}

// Wrapper to already return the .Err()
func (r *RedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}

// Wrapper to already return the .Err()
func (r *RedisClient) Del(ctx context.Context, keys ...string) error {
	return r.Client.Del(ctx, keys...).Err()
}
