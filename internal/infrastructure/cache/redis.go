package cache

import (
	"context"
	"fmt"

	"hospitaldesk/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient connects to Redis when a host is configured. Redis is
// optional here: without it the overview counters are computed from the
// database on every request.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Host == "" {
		logrus.Info("Redis not configured, overview counters will use database counts")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logrus.Info("Successfully connected to Redis")

	return client, nil
}
