// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package recommend implements the hybrid movie recommender.
//
// # Scoring
//
// A request for user u and k results runs these steps:
//
//  1. Map the raw user ID to a dense index with the user Encoder.
//  2. Ask the FactorModel for k candidates, excluding items u already rated.
//  3. Build u's genre profile as the mean genre vector of the rated items and
//     score each candidate by dot product with it. Users with no ratings get
//     a zero genre signal.
//  4. Min-max normalize both signals with a 1e-8 guard and blend them as
//     alpha*als + (1-alpha)*genre.
//  5. Rank by the blend (stable, so ties keep factor order), map back to raw
//     movie IDs, join with the Catalog and drop candidates without metadata.
//  6. Optionally re-sort by movie ID and truncate to k.
//
// # Snapshots
//
// All model state lives in an immutable Snapshot. The Engine holds the
// current one behind an atomic pointer, so requests never lock and a reload
// is a single Swap:
//
//	snap, err := storage.Load(ctx, paths)
//	engine.Swap(snap)
//
//	resp, err := engine.Recommend(ctx, recommend.Request{UserID: 42, K: 10})
//
// # Thread Safety
//
// Engine is safe for concurrent use. Snapshots are never mutated after
// construction.
//
// Subpackages:
//   - algorithms: ALS factor scoring, genre matrix, CSR interaction matrix
//   - storage: artifact loading and validation
package recommend
