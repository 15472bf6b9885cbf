// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backend built on patrickmn/go-cache
// - cache/file: One-file-per-key cache backend with atomic writes
// - cache/redis: Redis-based cache backend with SCAN pattern deletion
// - cache/sqlite: SQLite-backed cache with parameterized queries
// - http/standard: HTTP client with retry logic and outbound rate limiting
// - logger/logrus: Structured logger built on sirupsen/logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Backends
//
// Memory cache example:
//
//	backend := memory.NewMemoryCache(1 * time.Hour)
//	err := backend.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := backend.Get(ctx, "key")
//	removed, err := backend.DeletePattern(ctx, "reddit:*")
//
// Redis cache example:
//
//	cfg := config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	}
//	backend, err := redis.NewRedisCache(cfg)
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures
// and an optional token-bucket limiter on outbound requests:
//
//	client := standard.NewStandardHTTPClient(standard.Options{
//	    Timeout:           30 * time.Second,
//	    RequestsPerSecond: 2,
//	})
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports leveled, structured logging with fields:
//
//	logger := logrus.NewLogrusLogger(logrus.Options{Level: "info"})
//	logger.Info("Analyzing subreddits", map[string]interface{}{
//	    "subreddits": []string{"programming"},
//	    "lookback":   7,
//	})
package infrastructure
