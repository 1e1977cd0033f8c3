// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command ui serves the HTML front end. It talks to the API at UI_API_URL.
//
//	export UI_API_URL=http://localhost:8000
//	export UI_PORT=8501
//	./ui
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/reelmix/internal/client"
	"github.com/tomtom215/reelmix/internal/config"
	"github.com/tomtom215/reelmix/internal/logging"
	"github.com/tomtom215/reelmix/internal/supervisor"
	"github.com/tomtom215/reelmix/internal/supervisor/services"
	"github.com/tomtom215/reelmix/internal/ui"
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

	opts := client.DefaultOptions()
	opts.BaseURL = cfg.UI.APIURL
	opts.Timeout = cfg.UI.Timeout
	apiClient, err := client.New(opts)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create API client")
	}

	handler, err := ui.NewHandler(apiClient, cfg.UI.Timeout)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create UI handler")
	}

	server := &http.Server{
		Addr:              cfg.UI.Addr(),
		Handler:           ui.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.UI.Timeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second).WithName("ui-server"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().
		Str("addr", server.Addr).
		Str("api_url", apiClient.BaseURL()).
		Msg("Starting reelmix UI")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("UI stopped with error")
	}
	logging.Info().Msg("UI stopped")
}
