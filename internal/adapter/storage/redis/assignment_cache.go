package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"brit-matcher/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// AssignmentCache implements ports.AssignmentCache using Redis.
// Entries are written with SET NX so a cached day is never overwritten.
type AssignmentCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewAssignmentCache creates a Redis-backed assignment cache. A zero ttl keeps entries forever.
func NewAssignmentCache(client *goredis.Client, ttl time.Duration) *AssignmentCache {
	return &AssignmentCache{
		client: client,
		prefix: "brit:assignment:",
		ttl:    ttl,
	}
}

// Get returns the cached addresses for date, or nil on a miss.
func (c *AssignmentCache) Get(ctx context.Context, date string) ([]domain.Address, error) {
	val, err := c.client.Get(ctx, c.prefix+date).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis assignment get: %w", err)
	}

	var addresses []domain.Address
	if err := json.Unmarshal(val, &addresses); err != nil {
		return nil, fmt.Errorf("decode cached assignment: %w", err)
	}
	return addresses, nil
}

// SetIfAbsent caches addresses for date unless an entry already exists.
func (c *AssignmentCache) SetIfAbsent(ctx context.Context, date string, addresses []domain.Address) error {
	raw, err := json.Marshal(domain.SortedUnique(addresses))
	if err != nil {
		return fmt.Errorf("encode assignment: %w", err)
	}

	err = c.client.SetArgs(ctx, c.prefix+date, raw, goredis.SetArgs{
		Mode: "NX",
		TTL:  c.ttl,
	}).Err()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("redis assignment set: %w", err)
	}
	return nil
}
