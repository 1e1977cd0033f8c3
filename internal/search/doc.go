// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package search provides an in-memory full-text index over the movie
// catalog, so clients can look up movie IDs by title.
//
// The index is rebuilt from scratch whenever the recommender installs a new
// snapshot. Register it with the engine:
//
//	idx := search.NewIndex(logger)
//	engine.OnSwap(idx.OnSwap)
//
// Queries match the title with English stemming, tolerate one typo, and
// support prefix completion. An optional genre filter matches exactly.
package search
