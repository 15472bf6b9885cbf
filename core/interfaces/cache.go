// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache backends.
// Implementations can be file-based, Redis, SQLite, or in-memory.
//
// Backends store opaque byte payloads; freshness bookkeeping beyond the
// TTL hint (the value envelope with its expires_at field) is handled by
// the cache store that sits on top of a backend.
//
// Example usage:
//
//	backend := someBackend // implements Cache interface
//
//	// Store a value
//	err := backend.Set(ctx, "reddit:2025-10-21:golang", data, 1*time.Hour)
//
//	// Retrieve a value
//	data, err := backend.Get(ctx, "reddit:2025-10-21:golang")
//	if err != nil {
//		// handle cache miss
//	}
//
//	// Remove every reddit entry for the day
//	n, err := backend.DeletePattern(ctx, "reddit:2025-10-21:*")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// DeletePattern removes every key matching the glob pattern, where '*'
	// matches any substring. Returns the number of entries removed.
	// Deleting with a pattern that matches nothing is not an error.
	DeletePattern(ctx context.Context, pattern string) (int, error)
}
