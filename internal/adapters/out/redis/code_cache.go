// Package redis provides a Redis-backed store for short-lived completion
// codes. Expiry is delegated to Redis key TTLs, and consumption uses a Lua
// script so that compare and delete happen atomically.
package redis

import (
	"context"
	"time"

	"dispatch/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// compareAndEvictScript deletes the key only when its value matches the
// candidate. Returns 1 when the code was consumed, 0 otherwise.
var compareAndEvictScript = redis.NewScript(`
local key = KEYS[1]
local candidate = ARGV[1]

local current = redis.call('GET', key)
if current == candidate then
	redis.call('DEL', key)
	return 1
end

return 0
`)

// CodeCache implements ports.CodeCache on a Redis client.
type CodeCache struct {
	client *redis.Client
}

// NewCodeCache creates a Redis-backed code cache.
func NewCodeCache(client *redis.Client) (*CodeCache, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	return &CodeCache{client: client}, nil
}

// Put stores value under key with the given TTL, replacing any previous value.
func (c *CodeCache) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// CompareAndEvict atomically consumes the cached value when it matches
// candidate. An expired or absent key is a mismatch, not an error.
func (c *CodeCache) CompareAndEvict(ctx context.Context, key, candidate string) (bool, error) {
	result, err := compareAndEvictScript.Run(ctx, c.client, []string{key}, candidate).Int()
	if err != nil {
		return false, err
	}

	return result == 1, nil
}

// Evict removes the key unconditionally.
func (c *CodeCache) Evict(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
