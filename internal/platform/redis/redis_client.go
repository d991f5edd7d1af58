// Package redis constructs the Redis client shared by the list cache and
// the token denylist.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"recipe_backend/internal/config"
)

// NewRedisClient connects to Redis using the given config and verifies the
// connection with a ping. Callers treat a nil client as "Redis disabled".
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.Addr(), "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.Addr())
	return rdb, nil
}
