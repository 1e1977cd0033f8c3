// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

// @title Reelmix API
// @version 1.0
// @description Hybrid movie recommendations blending matrix-factorization scores with genre affinity.
// @description
// @description ## Error Responses
// @description
// @description Errors use the envelope `{"status": "error", "error": {"code", "message", "details"}, "metadata": {"timestamp"}}`.
// @description
// @description ## Rate Limiting
// @description
// @description Recommendation and search routes are limited per client IP. Health, metrics and docs are not.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/reelmix/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Service banner and health checks
//
// @tag.name Recommendations
// @tag.description Per-user recommendations and model status
//
// @tag.name Search
// @tag.description Title and genre search over the movie catalog
package main
