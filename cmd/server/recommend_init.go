// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmix/internal/cache"
	"github.com/tomtom215/reelmix/internal/config"
	"github.com/tomtom215/reelmix/internal/logging"
	"github.com/tomtom215/reelmix/internal/recommend"
	"github.com/tomtom215/reelmix/internal/recommend/storage"
	"github.com/tomtom215/reelmix/internal/search"
	"github.com/tomtom215/reelmix/internal/supervisor/services"
)

// RecommendComponents holds everything built around the engine.
type RecommendComponents struct {
	Engine  *recommend.Engine
	Cache   cache.Store
	Search  *search.Index
	Watcher *services.ArtifactWatcherService
}

// Close releases the cache and search index.
func (c *RecommendComponents) Close() {
	if c.Search != nil {
		if err := c.Search.Close(); err != nil {
			logging.Warn().Err(err).Msg("error closing search index")
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logging.Warn().Err(err).Msg("error closing response cache")
		}
	}
}

// initRecommend builds the cache, engine and search index, then loads the
// artifacts once. The returned watcher is always usable for Reload; it is
// only added to the supervisor when watching is enabled.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*RecommendComponents, error) {
	comps := &RecommendComponents{}

	var responseCache recommend.ResponseCache
	if cfg.Cache.Enabled {
		store, err := cache.New(cache.Options{
			Backend:    cfg.Cache.Backend,
			TTL:        cfg.Cache.TTL,
			MaxEntries: cfg.Cache.MaxEntries,
			Path:       cfg.Cache.Path,
		})
		if err != nil {
			return nil, fmt.Errorf("create response cache: %w", err)
		}
		comps.Cache = store
		responseCache = store
		logger.Info().
			Str("backend", store.Name()).
			Dur("ttl", cfg.Cache.TTL).
			Msg("response cache enabled")
	}

	engine, err := recommend.NewEngine(buildEngineConfig(cfg), responseCache, logger)
	if err != nil {
		comps.Close()
		return nil, fmt.Errorf("create engine: %w", err)
	}
	comps.Engine = engine

	if cfg.Search.Enabled {
		comps.Search = search.NewIndex(logger)
		engine.OnSwap(comps.Search.OnSwap)
	}

	paths := storage.PathsFromConfig(cfg.Artifacts)
	comps.Watcher = services.NewArtifactWatcherService(
		func(ctx context.Context) (*recommend.Snapshot, error) {
			return storage.Load(ctx, paths)
		},
		engine,
		services.ArtifactWatcherConfig{
			Files:    paths.Files(),
			Debounce: cfg.Artifacts.Debounce,
		},
		logger,
	)

	if _, err := comps.Watcher.Reload(ctx); err != nil {
		comps.Close()
		return nil, err
	}

	return comps, nil
}

func buildEngineConfig(cfg *config.Config) recommend.Config {
	ec := recommend.DefaultConfig()
	if cfg.Recommend.DefaultK > 0 {
		ec.DefaultK = cfg.Recommend.DefaultK
	}
	if cfg.Recommend.MaxK > 0 {
		ec.MaxK = cfg.Recommend.MaxK
	}
	ec.DefaultAlpha = cfg.Recommend.DefaultAlpha
	if cfg.Recommend.Order != "" {
		ec.Order = cfg.Recommend.Order
	}
	return ec
}
