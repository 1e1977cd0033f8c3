// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api serves the recommendation engine over HTTP using the chi router.
//
// # Routes
//
//	GET  /                      {"status":"API is running"}
//	POST /recommend             {user_id, k, alpha} -> {user_id, recommendations}
//	GET  /health/live           liveness check
//	GET  /health/ready          200 once artifacts are loaded, 503 before
//	GET  /api/v1/model/status   snapshot summary and engine counters
//	GET  /api/v1/movies/search  title search (?q=&genre=&limit=)
//	GET  /metrics               Prometheus exposition
//	GET  /swagger/*             Swagger UI and doc.json
//
// The root and /recommend bodies are flat JSON so existing clients keep
// working. Every other route, and every error, uses the envelope:
//
//	{
//	  "status": "error",
//	  "error": {"code": "UNKNOWN_USER", "message": "...", "details": {...}},
//	  "metadata": {"timestamp": "2026-01-02T15:04:05Z"}
//	}
//
// # Middleware
//
// Global: request ID, real IP, panic recovery, CORS, access log.
// Health checks, metrics and docs skip the rate limiter; everything else is limited per IP and
// instrumented with Prometheus before gzip compression.
package api
