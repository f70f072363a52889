package redis

import (
	"context"
	"fmt"
	"time"

	"brit-matcher/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ClientName identifies matcher connections in CLIENT LIST.
const ClientName = "brit-matcher"

const dialTimeout = 3 * time.Second

// Options maps the matcher's redis settings onto go-redis options.
func Options(cfg config.RedisConfig) *goredis.Options {
	return &goredis.Options{
		Addr:        cfg.Addr(),
		Password:    cfg.Password,
		DB:          cfg.DB,
		ClientName:  ClientName,
		DialTimeout: dialTimeout,
	}
}

// NewClient connects to the redis backing the assignment cache and rate limits.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(Options(cfg))
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("component", "redis").
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Dur("assignment_ttl", cfg.AssignmentTTL).
		Msg("assignment cache and rate limit store connected")

	return client, nil
}
