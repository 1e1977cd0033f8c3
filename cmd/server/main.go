// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/reelmix/docs" // Import generated swagger docs
	"github.com/tomtom215/reelmix/internal/api"
	"github.com/tomtom215/reelmix/internal/config"
	"github.com/tomtom215/reelmix/internal/logging"
	"github.com/tomtom215/reelmix/internal/supervisor"
	"github.com/tomtom215/reelmix/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("artifacts_dir", cfg.Artifacts.Dir).
		Str("addr", cfg.Server.Addr()).
		Bool("watch", cfg.Artifacts.Watch).
		Bool("cache", cfg.Cache.Enabled).
		Bool("search", cfg.Search.Enabled).
		Msg("Starting reelmix API")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	comps, err := initRecommend(ctx, cfg, logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load model artifacts")
	}
	defer comps.Close()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	var searcher api.Searcher
	if comps.Search != nil {
		searcher = comps.Search
	}
	handler := api.NewHandler(comps.Engine, searcher, cfg.Recommend.Timeout)
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security))
	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	if cfg.Artifacts.Watch {
		tree.AddDataService(comps.Watcher)
		logging.Info().Dur("debounce", cfg.Artifacts.Debounce).Msg("Artifact watcher added to supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	run(ctx, cancel, tree)
}

// run serves tree until SIGINT/SIGTERM and reports services that did not
// stop in time.
func run(ctx context.Context, cancel context.CancelFunc, tree *supervisor.SupervisorTree) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	var err error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
		err = <-errCh
	case err = <-errCh:
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Stopped gracefully")
}
