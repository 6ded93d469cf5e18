package ports

import (
	"context"
	"time"
)

// CodeCache stores short-lived one-time codes keyed by assignment. The cache
// is the single source of truth for a code's validity: an absent key means
// the code expired or was already consumed.
type CodeCache interface {
	// Put stores value under key with the given TTL, replacing any previous
	// value for the key.
	Put(ctx context.Context, key, value string, ttl time.Duration) error

	// CompareAndEvict atomically compares the cached value against candidate
	// and removes it on a match. Returns true only when the value matched and
	// was consumed; a mismatch leaves the cached value in place.
	CompareAndEvict(ctx context.Context, key, candidate string) (bool, error)

	// Evict removes the key unconditionally. Absent keys are not an error.
	Evict(ctx context.Context, key string) error
}
