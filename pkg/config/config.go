package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Database configuration.
type DatabaseConfiguration struct {
	DSN            string
	Database       string
	MigrationsPath string
}

// Redis configuration.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Bucket used for uploading the run logs.
type BucketConfiguration struct {
	Region       string
	Endpoint     string
	AccessKey    string
	AccessSecret string
	LogBucket    string
}

// Provider is the third-party match statistics feed.
type ProviderConfiguration struct {
	BaseURL    string
	ApiKey     string
	FetchDelay time.Duration
	Timeout    time.Duration
}

// Poller controls the ingestion run and its freshness guard.
type PollerConfiguration struct {
	Interval         time.Duration
	LookbackWindow   time.Duration
	FreshUncachedAge time.Duration
	FreshPendingAge  time.Duration
}

// Auth holds the secret shared with the identity provider.
type AuthConfiguration struct {
	JWTSecret string
}

// Retention of cached matches, in days.
type RetentionConfiguration struct {
	Days int
}

// Listening addresses.
type HTTPConfiguration struct {
	Addr        string
	GRPCAddr    string
	MetricsAddr string
}

// Full configuration of the services.
type Config struct {
	Database  DatabaseConfiguration
	Redis     RedisConfiguration
	Bucket    BucketConfiguration
	Provider  ProviderConfiguration
	Poller    PollerConfiguration
	Auth      AuthConfiguration
	Retention RetentionConfiguration
	HTTP      HTTPConfiguration
}

// Load reads the configuration from the environment.
// Outside docker the .env file is loaded first.
func Load() (*Config, error) {
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using the environment only")
		}
	}

	cfg := &Config{
		Database: DatabaseConfiguration{
			DSN:            os.Getenv("POSTGRES_DSN"),
			Database:       getEnv("POSTGRES_DB", "fantasy"),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "pkg/database/migrations"),
		},
		Redis: RedisConfiguration{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Bucket: BucketConfiguration{
			Region:       os.Getenv("BUCKET_REGION"),
			Endpoint:     os.Getenv("BUCKET_ENDPOINT"),
			AccessKey:    os.Getenv("BUCKET_ACCESS_KEY"),
			AccessSecret: os.Getenv("BUCKET_ACCESS_SECRET"),
			LogBucket:    os.Getenv("BUCKET_LOG_BUCKET"),
		},
		Provider: ProviderConfiguration{
			BaseURL: strings.TrimSuffix(getEnv("PROVIDER_BASE_URL", "https://api.opendota.com/api"), "/"),
			ApiKey:  os.Getenv("PROVIDER_API_KEY"),
		},
		Auth: AuthConfiguration{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		HTTP: HTTPConfiguration{
			Addr:        getEnv("HTTP_ADDR", ":8080"),
			GRPCAddr:    getEnv("GRPC_ADDR", ":50051"),
			MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
		},
	}

	var err error
	if cfg.Provider.FetchDelay, err = getDuration("PROVIDER_FETCH_DELAY", time.Second); err != nil {
		return nil, err
	}
	if cfg.Provider.Timeout, err = getDuration("PROVIDER_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.Poller.Interval, err = getDuration("POLLER_INTERVAL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Poller.LookbackWindow, err = getDuration("POLLER_LOOKBACK", 48*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Poller.FreshUncachedAge, err = getDuration("POLLER_FRESH_UNCACHED", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Poller.FreshPendingAge, err = getDuration("POLLER_FRESH_PENDING", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Retention.Days, err = getInt("RETENTION_DAYS", 2); err != nil {
		return nil, err
	}

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("POSTGRES_DSN is required")
	}

	return cfg, nil
}

// HasBucket reports whether the log bucket is configured.
func (c *Config) HasBucket() bool {
	return c.Bucket.LogBucket != "" && c.Bucket.Endpoint != ""
}

// getEnv returns the variable or the fallback when empty.
func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration on %s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer on %s: %w", key, err)
	}
	return n, nil
}
