package cache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// fakeBackend is an in-memory Cache implementation that ignores the TTL
// hint, so expiry in tests exercises the store's envelope check.
type fakeBackend struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{entries: make(map[string][]byte)}
}

func (b *fakeBackend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.entries[key]
	if !ok {
		return nil, errors.New("key not found")
	}
	return data, nil
}

func (b *fakeBackend) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[key] = value
	return nil
}

func (b *fakeBackend) DeletePattern(_ context.Context, pattern string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	count := 0
	for key := range b.entries {
		if globMatch(pattern, key) {
			delete(b.entries, key)
			count++
		}
	}
	return count, nil
}

func globMatch(pattern, key string) bool {
	parts := strings.Split(pattern, "*")
	if len(parts) == 1 {
		return pattern == key
	}
	if !strings.HasPrefix(key, parts[0]) {
		return false
	}
	rest := key[len(parts[0]):]
	for _, part := range parts[1 : len(parts)-1] {
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
	}
	return strings.HasSuffix(rest, parts[len(parts)-1])
}

// faultyBackend fails every operation, for degradation tests.
type faultyBackend struct{}

func (faultyBackend) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (faultyBackend) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func (faultyBackend) DeletePattern(context.Context, string) (int, error) {
	return 0, errors.New("connection refused")
}
