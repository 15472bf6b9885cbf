package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewFileCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")

	cache, err := NewFileCache(dir)

	if err != nil {
		t.Fatalf("NewFileCache returned error: %v", err)
	}
	if cache == nil {
		t.Fatal("NewFileCache returned nil")
	}

	// The directory should have been created
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("cache directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("cache path is not a directory")
	}
}

func TestNewFileCache_EmptyDir(t *testing.T) {
	cache, err := NewFileCache("")

	if err == nil {
		t.Error("NewFileCache should return error for empty directory")
	}
	if cache != nil {
		t.Error("NewFileCache should return nil cache for empty directory")
	}
}

func TestFileCache_Get_ExistingKey(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	ctx := context.Background()

	key := "reddit:2026-08-31:golang:7:python"
	value := []byte(`{"value":"data","expires_at":null}`)

	if err := cache.Set(ctx, key, value, 1*time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Errorf("Get returned error: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("Get returned %s, want %s", string(got), string(value))
	}
}

func TestFileCache_Get_NonExistentKey(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}

	got, err := cache.Get(context.Background(), "non-existent")

	if err == nil {
		t.Error("Get should return error for non-existent key")
	}
	if got != nil {
		t.Error("Get should return nil value for non-existent key")
	}
}

func TestFileCache_Set_SanitizesFilename(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	ctx := context.Background()

	key := "trends:2026-08-31:rust/go"
	if err := cache.Set(ctx, key, []byte("v"), 1*time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Separators must not leak into the directory structure
	want := filepath.Join(dir, "trends_2026-08-31_rust_go.json")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected cache file %s: %v", want, err)
	}
}

func TestFileCache_Set_OverwritesExisting(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	ctx := context.Background()

	key := "test-key"
	if err := cache.Set(ctx, key, []byte("first"), 1*time.Hour); err != nil {
		t.Fatalf("First set failed: %v", err)
	}
	if err := cache.Set(ctx, key, []byte("second"), 1*time.Hour); err != nil {
		t.Fatalf("Second set failed: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Get returned %s, want second", string(got))
	}
}

func TestFileCache_Set_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := cache.Set(ctx, "key", []byte("v"), 1*time.Hour); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected a single cache file, got %v", names)
	}
}

func TestFileCache_DeletePattern_RemovesMatches(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	ctx := context.Background()

	cache.Set(ctx, "reddit:2026-08-31:golang", []byte("a"), 1*time.Hour)
	cache.Set(ctx, "reddit:2026-08-30:rust", []byte("b"), 1*time.Hour)
	cache.Set(ctx, "freelance:2026-08-31:upwork", []byte("c"), 1*time.Hour)

	removed, err := cache.DeletePattern(ctx, "reddit:*")

	if err != nil {
		t.Errorf("DeletePattern returned error: %v", err)
	}
	if removed != 2 {
		t.Errorf("DeletePattern removed %d files, want 2", removed)
	}

	// Non-matching key should survive
	got, err := cache.Get(ctx, "freelance:2026-08-31:upwork")
	if err != nil {
		t.Errorf("surviving key should be readable: %v", err)
	}
	if string(got) != "c" {
		t.Errorf("surviving key value = %s, want c", string(got))
	}
}

func TestFileCache_DeletePattern_OnlyStarIsAWildcard(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	ctx := context.Background()

	// ? and brackets from search timeframes stay literal; only * expands.
	cache.Set(ctx, "trends:rust?:now 7-d", []byte("a"), 1*time.Hour)
	cache.Set(ctx, "trends:rusty:now 7-d", []byte("b"), 1*time.Hour)

	removed, err := cache.DeletePattern(ctx, "trends:rust?:*")
	if err != nil {
		t.Fatalf("DeletePattern returned error: %v", err)
	}
	if removed != 1 {
		t.Errorf("DeletePattern removed %d files, want only the literal ? match", removed)
	}
	if _, err := cache.Get(ctx, "trends:rusty:now 7-d"); err != nil {
		t.Error("? must not match an arbitrary character")
	}
}

func TestFileCache_DeletePattern_NoMatches(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}

	removed, err := cache.DeletePattern(context.Background(), "no-such-prefix:*")

	if err != nil {
		t.Errorf("DeletePattern should return nil for no matches, got: %v", err)
	}
	if removed != 0 {
		t.Errorf("DeletePattern removed %d files, want 0", removed)
	}
}

func TestFileCache_ContextCancellation(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get should fail with cancelled context")
	}
	if err := cache.Set(ctx, "key", []byte("v"), time.Hour); err == nil {
		t.Error("Set should fail with cancelled context")
	}
	if _, err := cache.DeletePattern(ctx, "*"); err == nil {
		t.Error("DeletePattern should fail with cancelled context")
	}
}
