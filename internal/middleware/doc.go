// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package middleware holds the net/http middleware shared by the API server
// and the UI process.
//
// Every middleware has the http.HandlerFunc shape so it can be used directly
// or through the chi adapter in internal/api:
//
//	r.Use(chiMiddleware(middleware.PrometheusMetrics))
//
// Ordering used by the API router:
//
//	RequestID -> RealIP -> Recoverer -> CORS -> AccessLog -> RateLimit -> PrometheusMetrics -> Compression
package middleware
