// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, sources and analysis

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Sources contains outbound source adapter configuration
	Sources SourcesConfig

	// Analysis contains aggregation configuration
	Analysis AnalysisConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (file/redis/memory/sqlite)
	Type string

	// Enabled turns caching off entirely when false
	Enabled bool

	// TTLSeconds is the default TTL for cache entries
	TTLSeconds int

	// Dir is the storage directory for the file backend
	Dir string

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SourcesConfig holds outbound adapter configuration
type SourcesConfig struct {
	// UserAgent identifies the scrapers on outbound requests
	UserAgent string

	// TimeoutSeconds bounds each outbound request
	TimeoutSeconds int

	// MaxRetries is the retry budget for GET requests
	MaxRetries int

	// RequestsPerSecond throttles outbound traffic (0 disables)
	RequestsPerSecond float64
}

// AnalysisConfig holds aggregation configuration
type AnalysisConfig struct {
	// SourceWeights maps source names to aggregation weights,
	// parsed from "name=weight,name=weight" form
	SourceWeights map[string]float64

	// DataDir holds history fallback files
	DataDir string

	// ReportDir receives generated report files
	ReportDir string

	// TopN truncates ranked result lists; 0 keeps every entry
	TopN int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// JSON switches log output to JSON
	JSON bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type:       getEnvOrDefault("CACHE_TYPE", "memory"),
			Enabled:    getEnvAsBoolOrDefault("CACHE_ENABLED", true),
			TTLSeconds: getEnvAsIntOrDefault("CACHE_TTL", 3600),
			Dir:        getEnvOrDefault("CACHE_DIR", ".cache"),
			SQLitePath: getEnvOrDefault("CACHE_SQLITE_PATH", "cache.db"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Sources: SourcesConfig{
			UserAgent:         getEnvOrDefault("SOURCES_USER_AGENT", "TrendsAppAPI/1.0"),
			TimeoutSeconds:    getEnvAsIntOrDefault("SOURCES_TIMEOUT", 30),
			MaxRetries:        getEnvAsIntOrDefault("SOURCES_MAX_RETRIES", 3),
			RequestsPerSecond: getEnvAsFloatOrDefault("SOURCES_RATE_LIMIT", 0),
		},
		Analysis: AnalysisConfig{
			SourceWeights: parseWeights(getEnvOrDefault("SOURCE_WEIGHTS", "")),
			DataDir:       getEnvOrDefault("DATA_DIR", "data"),
			ReportDir:     getEnvOrDefault("REPORT_DIR", "reports"),
			TopN:          getEnvAsIntOrDefault("ANALYSIS_TOP_N", 0),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
			JSON:  getEnvAsBoolOrDefault("LOG_JSON", false),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// parseWeights parses "github_trending=2,stackoverflow=1.5" into a map.
// Malformed pairs are skipped rather than failing startup.
func parseWeights(raw string) map[string]float64 {
	weights := make(map[string]float64)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			continue
		}
		weights[strings.ToLower(strings.TrimSpace(name))] = weight
	}
	return weights
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "file", "redis", "memory", "sqlite":
	default:
		return errors.New("cache type must be 'file', 'redis', 'memory' or 'sqlite'")
	}

	if c.Cache.TTLSeconds < 0 {
		return errors.New("cache TTL cannot be negative")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "file" && c.Cache.Dir == "" {
		return errors.New("cache directory cannot be empty when using file cache")
	}

	if c.Sources.TimeoutSeconds < 1 {
		return errors.New("sources timeout must be at least 1 second")
	}

	for name, weight := range c.Analysis.SourceWeights {
		if weight < 0 {
			return errors.New("source weight cannot be negative: " + name)
		}
	}

	if c.Analysis.TopN < 0 {
		return errors.New("top-N limit cannot be negative")
	}

	return nil
}
