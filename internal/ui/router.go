// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/reelmix/internal/middleware"
)

// NewRouter builds the UI route tree.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(adapt(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(adapt(middleware.AccessLog))

	r.Get("/health/live", h.Health)
	r.Get("/", h.Index)
	r.Post("/", h.Submit)

	return r
}

func adapt(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}
