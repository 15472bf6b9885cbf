// ABOUTME: Filesystem cache backend storing one JSON document per key
// ABOUTME: Survives restarts without a database; keys map to sanitized filenames

package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// keys contain : separators and may contain /, neither of which is
// filename-safe everywhere
var filenameReplacer = strings.NewReplacer("/", "_", ":", "_")

// FileCache implements the cache backend interface on the filesystem
type FileCache struct {
	dir string
}

// NewFileCache creates a file cache rooted at dir, creating it if needed
func NewFileCache(dir string) (*FileCache, error) {
	if dir == "" {
		return nil, errors.New("cache directory cannot be empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &FileCache{dir: dir}, nil
}

// filename maps a cache key to its on-disk name. The same mapping is
// applied to invalidation patterns so * wildcards keep lining up.
func filename(key string) string {
	return filenameReplacer.Replace(key) + ".json"
}

// globRegexp compiles an invalidation pattern where only * is a
// wildcard. Everything else, including ? and brackets that show up in
// search keys, matches itself.
func globRegexp(pattern string) *regexp.Regexp {
	quoted := strings.ReplaceAll(regexp.QuoteMeta(pattern), `\*`, ".*")
	return regexp.MustCompile("^" + quoted + "$")
}

// Get retrieves a value from the cache
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(filepath.Join(c.dir, filename(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("key not found")
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	return data, nil
}

// Set stores a value in the cache. The entry's expiry lives inside the
// stored document, so the TTL is not tracked separately on disk.
func (c *FileCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	target := filepath.Join(c.dir, filename(key))

	// Write-then-rename keeps concurrent readers from seeing a torn file
	tmp, err := os.CreateTemp(c.dir, "write-*")
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close cache file: %w", err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to store cache file: %w", err)
	}

	return nil
}

// DeletePattern removes all keys matching the glob pattern and returns
// how many files were removed
func (c *FileCache) DeletePattern(ctx context.Context, pattern string) (int, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to list cache directory: %w", err)
	}

	namePattern := globRegexp(filename(pattern))
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		if !namePattern.MatchString(entry.Name()) {
			continue
		}

		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, fmt.Errorf("failed to remove cache file: %w", err)
		}
		removed++
	}

	return removed, nil
}
