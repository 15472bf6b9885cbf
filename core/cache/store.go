// ABOUTME: Cache store with TTL envelopes, lazy expiry and fetch-or-compute
// ABOUTME: Backend-agnostic; every tool handler routes through this store

package cache

import (
	"context"
	"encoding/json"
	"time"

	"trends-app-api/core/errors"
	"trends-app-api/core/interfaces"
)

// Store is the caching layer every handler routes through. It wraps a
// pluggable backend with a JSON entry envelope, per-entry TTL with lazy
// expiry, glob invalidation, a disabled mode, and a fetch-or-compute
// coordinator.
//
// The store is best-effort: any backend fault degrades to a cache miss
// on read and a silent no-op on write. A failed cache never becomes a
// hard error for the caller.
type Store struct {
	backend    interfaces.Cache
	logger     interfaces.Logger
	enabled    bool
	defaultTTL time.Duration
}

// Options configures a Store.
type Options struct {
	// Enabled toggles caching. When false, Get always misses, Set is a
	// no-op and GetOrFetch always invokes its producer.
	Enabled bool

	// DefaultTTL applies when Set or GetOrFetch receive a zero TTL.
	// Defaults to one hour.
	DefaultTTL time.Duration
}

// entry is the serialized representation of one cache value. ExpiresAt
// is unix epoch nanoseconds; nil means the entry never expires. The
// file backend relies on this field for freshness, the Redis backend
// expires natively and the field is a redundant cross-check.
type entry struct {
	Value     json.RawMessage `json:"value"`
	ExpiresAt *int64          `json:"expires_at"`
}

// NewStore creates a cache store on top of a backend.
func NewStore(backend interfaces.Cache, logger interfaces.Logger, opts Options) *Store {
	if opts.DefaultTTL <= 0 {
		opts.DefaultTTL = time.Hour
	}
	return &Store{
		backend:    backend,
		logger:     logger,
		enabled:    opts.Enabled,
		defaultTTL: opts.DefaultTTL,
	}
}

// Get retrieves the value stored at key into dest, reporting whether a
// fresh entry was found. Stale entries are treated identically to
// absent ones; there is no background sweep. Get never returns an
// error: backend or serialization faults count as misses.
func (s *Store) Get(ctx context.Context, key string, dest interface{}) bool {
	if !s.enabled || s.backend == nil {
		return false
	}

	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		return false
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		s.warn(&errors.CacheError{Op: "decode", Key: key, Err: err})
		return false
	}

	if e.ExpiresAt != nil && time.Now().UnixNano() >= *e.ExpiresAt {
		return false
	}

	if err := json.Unmarshal(e.Value, dest); err != nil {
		s.warn(&errors.CacheError{Op: "decode", Key: key, Err: err})
		return false
	}

	return true
}

// Set stores value at key with the given TTL, overwriting any prior
// entry. A zero ttl falls back to the store default. Write failures are
// swallowed: a broken backend degrades to always-recompute.
func (s *Store) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if !s.enabled || s.backend == nil {
		return
	}

	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	raw, err := json.Marshal(value)
	if err != nil {
		s.warn(&errors.CacheError{Op: "encode", Key: key, Err: err})
		return
	}

	expiresAt := time.Now().Add(ttl).UnixNano()
	payload, err := json.Marshal(entry{Value: raw, ExpiresAt: &expiresAt})
	if err != nil {
		s.warn(&errors.CacheError{Op: "encode", Key: key, Err: err})
		return
	}

	if err := s.backend.Set(ctx, key, payload, ttl); err != nil {
		s.warn(&errors.CacheError{Op: "set", Key: key, Err: err})
	}
}

// Invalidate removes every entry matching the glob pattern ('*' matches
// any substring) and returns the number removed. Best-effort across the
// backend.
func (s *Store) Invalidate(ctx context.Context, pattern string) int {
	if s.backend == nil {
		return 0
	}

	n, err := s.backend.DeletePattern(ctx, pattern)
	if err != nil {
		s.warn(&errors.CacheError{Op: "invalidate", Key: pattern, Err: err})
	}
	return n
}

// GetOrFetch returns the cached value at key, or invokes produce to
// compute it, stores the result and returns it. This is the only path
// by which handler values are computed.
//
// The store provides no cross-call mutual exclusion per key: two
// concurrent callers missing on the same key both invoke their producer
// and both write, last writer wins. This race is accepted — producers
// are idempotent and cache coherency is best-effort, not linearizable.
func (s *Store) GetOrFetch(ctx context.Context, key string, ttl time.Duration, dest interface{}, produce func(context.Context) (interface{}, error)) error {
	if s.Get(ctx, key, dest) {
		return nil
	}

	value, err := produce(ctx)
	if err != nil {
		return err
	}

	s.Set(ctx, key, value, ttl)

	// Round-trip through JSON so hits and misses hand the caller the
	// same shape.
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.WrapError(err, "encoding produced value")
	}
	return json.Unmarshal(raw, dest)
}

func (s *Store) warn(err *errors.CacheError) {
	if s.logger == nil {
		return
	}
	s.logger.Warn("Cache backend fault", map[string]interface{}{
		"op":    err.Op,
		"key":   err.Key,
		"error": err.Err.Error(),
	})
}
