// ABOUTME: Main entry point for the Trends App API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trends-app-api/api"
	"trends-app-api/api/handlers"
	"trends-app-api/core/analysis"
	corecache "trends-app-api/core/cache"
	"trends-app-api/core/interfaces"
	"trends-app-api/core/report"
	"trends-app-api/infrastructure/cache/file"
	"trends-app-api/infrastructure/cache/memory"
	"trends-app-api/infrastructure/cache/redis"
	"trends-app-api/infrastructure/cache/sqlite"
	stdhttp "trends-app-api/infrastructure/http/standard"
	logruslogger "trends-app-api/infrastructure/logger/logrus"
	"trends-app-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogrusLogger(logruslogger.Options{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.JSON,
	})
	logger.Info("Starting Trends App API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"cache_type":    cfg.Cache.Type,
		"cache_enabled": cfg.Cache.Enabled,
	})

	defaultTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second

	// Create cache backend; every failure falls back to memory so the
	// server still comes up
	backend := newCacheBackend(cfg, logger, defaultTTL)

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(stdhttp.Options{
		Timeout:           time.Duration(cfg.Sources.TimeoutSeconds) * time.Second,
		MaxRetries:        cfg.Sources.MaxRetries,
		UserAgent:         cfg.Sources.UserAgent,
		RequestsPerSecond: cfg.Sources.RequestsPerSecond,
	})

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      backend,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create cache store on top of the backend
	store := corecache.NewStore(backend, logger, corecache.Options{
		Enabled:    cfg.Cache.Enabled,
		DefaultTTL: defaultTTL,
	})

	// Create services
	analysisService := analysis.NewService(deps, store, analysis.Config{
		TTL:       defaultTTL,
		Weights:   cfg.Analysis.SourceWeights,
		TopN:      cfg.Analysis.TopN,
		DataDir:   cfg.Analysis.DataDir,
		UserAgent: cfg.Sources.UserAgent,
	})
	reportService := report.NewService(logger, cfg.Analysis.ReportDir)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  100, // 100 requests per minute
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	analysisHandler.RegisterRoutes(humaAPI)

	reportHandler := handlers.NewReportHandler(analysisService, reportService)
	reportHandler.RegisterRoutes(humaAPI)

	promptHandler := handlers.NewPromptHandler()
	promptHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler(api.Version)
	healthHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// newCacheBackend builds the configured cache backend, falling back to
// the in-memory backend when the configured one cannot be created.
func newCacheBackend(cfg *config.Config, logger interfaces.Logger, defaultTTL time.Duration) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(defaultTTL)
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLitePath, logger)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(defaultTTL)
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLitePath,
		})
		return sqliteCache
	case "file":
		fileCache, err := file.NewFileCache(cfg.Cache.Dir)
		if err != nil {
			logger.Error("Failed to create file cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(defaultTTL)
		}
		logger.Info("Using file cache", map[string]interface{}{
			"dir": cfg.Cache.Dir,
		})
		return fileCache
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache(defaultTTL)
	}
}
