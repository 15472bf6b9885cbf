// ABOUTME: In-memory cache backend built on patrickmn/go-cache
// ABOUTME: Single-process storage with TTL eviction and glob invalidation

package memory

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const defaultCleanupInterval = 10 * time.Minute

// MemoryCache implements the cache backend interface in process memory
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance. A zero
// defaultTTL means entries without an explicit TTL never expire.
func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	if defaultTTL <= 0 {
		defaultTTL = gocache.NoExpiration
	}
	return &MemoryCache{
		store: gocache.New(defaultTTL, defaultCleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, ok := c.store.Get(key)
	if !ok {
		return nil, errors.New("key not found")
	}

	stored := value.([]byte)

	// Return a copy of the value
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Create a copy of the value
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.store.Set(key, valueCopy, ttl)

	return nil
}

// DeletePattern removes all keys matching the glob pattern and returns
// how many were removed
func (c *MemoryCache) DeletePattern(ctx context.Context, pattern string) (int, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	removed := 0
	keyPattern := globRegexp(pattern)
	for key := range c.store.Items() {
		if keyPattern.MatchString(key) {
			c.store.Delete(key)
			removed++
		}
	}

	return removed, nil
}

// globRegexp compiles an invalidation pattern where only * is a
// wildcard. Everything else, including ? and brackets that show up in
// search keys, matches itself.
func globRegexp(pattern string) *regexp.Regexp {
	quoted := strings.ReplaceAll(regexp.QuoteMeta(pattern), `\*`, ".*")
	return regexp.MustCompile("^" + quoted + "$")
}
