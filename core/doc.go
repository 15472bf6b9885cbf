// Package core contains the business logic for the Trends App API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (TechnologyScore, SourceResult, etc.)
// - analysis: Orchestration service tying sources, ranking and caching together
// - cache: TTL cache store and deterministic day-scoped key construction
// - ranking: Insertion-ordered counting and weighted multi-source aggregation
// - normalize: Technology name canonicalization and trend statistics
// - extract: Technology keyword extraction and sentiment scoring over text
// - sources: Source adapters (reddit, freelance marketplaces, trend sources)
// - report: Report rendering from aggregated trend data
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "trends-app-api/core/analysis"
//	    "trends-app-api/core/cache"
//	    "trends-app-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myBackend,    // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create the cache store and service
//	store := cache.NewStore(deps.Cache, deps.Logger, cache.Options{Enabled: true})
//	service := analysis.NewService(deps, store, analysis.Config{})
//
//	// Analyze subreddits
//	result, err := service.AnalyzeReddit(ctx, []string{"programming"}, 7, []string{"go", "rust"})
package core
