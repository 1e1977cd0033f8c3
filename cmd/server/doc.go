// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command server runs the recommendation API.
//
// Startup order:
//
//  1. Configuration (koanf: defaults, config.yaml, environment)
//  2. Logging
//  3. Response cache (memory or badger)
//  4. Engine and, when enabled, the title search index
//  5. Initial artifact load; failure is fatal
//  6. Supervisor tree: HTTP server and, when ARTIFACTS_WATCH is set, the
//     artifact watcher
//
// SIGINT and SIGTERM trigger a graceful shutdown.
//
//	export ARTIFACTS_DIR=./model
//	export HTTP_PORT=8000
//	./server
package main
