// Package cache provides a small Redis-backed read-through cache for the
// list endpoints. Listing hits the store once per TTL window; writes to an
// entity invalidate that entity's list key.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	CompaniesListKey = "companies:list"
	TasksListKey     = "tasks:list"

	// DefaultListTTL matches the short read cache of the upstream service
	// this API fronts for: lists may be up to 10s stale.
	DefaultListTTL = 10 * time.Second
)

// ListCache caches JSON-serialized list responses. A nil *ListCache (or one
// built without a Redis client) is a valid no-op cache.
type ListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewListCache(rdb *redis.Client, ttl time.Duration) *ListCache {
	if ttl <= 0 {
		ttl = DefaultListTTL
	}
	return &ListCache{rdb: rdb, ttl: ttl}
}

func (c *ListCache) enabled() bool {
	return c != nil && c.rdb != nil
}

// GetJSON reports whether key was cached and, if so, unmarshals it into v.
// Cache failures degrade to a miss; the caller falls through to the store.
func (c *ListCache) GetJSON(ctx context.Context, key string, v any) bool {
	if !c.enabled() {
		return false
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false
	}
	return true
}

// SetJSON stores v under key for the cache TTL.
func (c *ListCache) SetJSON(ctx context.Context, key string, v any) error {
	if !c.enabled() {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.ttl).Err()
}

// Invalidate drops the given keys after a write.
func (c *ListCache) Invalidate(ctx context.Context, keys ...string) error {
	if !c.enabled() || len(keys) == 0 {
		return nil
	}

	err := c.rdb.Del(ctx, keys...).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
