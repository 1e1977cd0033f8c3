// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage loads the artifacts exported by the training pipeline and
// assembles them into a recommend.Snapshot.
//
// # Artifact Formats
//
//	models/als_factors.json              {"user_factors": [[...]], "item_factors": [[...]]}
//	models/user_encoder.json             {"classes": [raw_user_id, ...]}
//	models/movie_encoder.json            {"classes": [raw_movie_id, ...]}
//	data/processed/item_user_train.json  {"shape": [users, items], "indptr": [...], "indices": [...], "data": [...]}
//	data/raw/movies.dat                  movie_id::title::genre1|genre2 (Latin-1)
//
// Any file may be gzip-compressed; a ".gz" suffix selects decompression.
//
// # Fingerprint
//
// Every snapshot carries the hex SHA-256 over the stored bytes of all five
// files, in the order above. Identical artifacts always produce identical
// fingerprints, so the value is safe to use as a cache key version.
//
// # Usage
//
//	paths := storage.PathsFromConfig(cfg.Artifacts)
//	snap, err := storage.Load(ctx, paths)
//	if err != nil {
//	    return err
//	}
//	engine.Swap(snap)
package storage
