// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package algorithms implements the model components of the hybrid engine.
//
// Nothing here trains. Every type is built once from exported artifacts and is
// read-only afterwards, so all of them are safe for concurrent use without
// locking.
//
//   - ALS: scores items with pretrained user and item latent factors
//     (implements recommend.FactorModel)
//   - GenreMatrix: binary item by genre matrix and mean-profile scoring
//     (implements recommend.GenreModel)
//   - CSR: compressed sparse row user by item interaction matrix
//     (implements recommend.InteractionMatrix)
package algorithms
