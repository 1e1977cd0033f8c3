// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"time"

	"github.com/tomtom215/reelmix/internal/recommend"
	"github.com/tomtom215/reelmix/internal/recommend/algorithms"
)

type factorsFile struct {
	UserFactors [][]float64 `json:"user_factors"`
	ItemFactors [][]float64 `json:"item_factors"`
}

type encoderFile struct {
	Classes []int `json:"classes"`
}

type csrFile struct {
	Shape   []int     `json:"shape"`
	Indptr  []int     `json:"indptr"`
	Indices []int     `json:"indices"`
	Data    []float64 `json:"data"`
}

// Load reads and validates every artifact in p and returns a ready snapshot.
// ctx is checked between files.
func Load(ctx context.Context, p Paths) (*recommend.Snapshot, error) { //nolint:gocritic // hugeParam: paths passed by value
	h := sha256.New()

	var factors factorsFile
	if err := loadJSON(ctx, p.Factors, h, &factors); err != nil {
		return nil, err
	}
	var userEnc encoderFile
	if err := loadJSON(ctx, p.UserEncoder, h, &userEnc); err != nil {
		return nil, err
	}
	var movieEnc encoderFile
	if err := loadJSON(ctx, p.MovieEncoder, h, &movieEnc); err != nil {
		return nil, err
	}
	var matrix csrFile
	if err := loadJSON(ctx, p.Interactions, h, &matrix); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := readArtifact(p.Movies, h)
	if err != nil {
		return nil, err
	}
	movies, err := ParseMovies(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", p.Movies, err)
	}

	users, err := recommend.NewEncoder(userEnc.Classes)
	if err != nil {
		return nil, fmt.Errorf("user encoder: %w", err)
	}
	items, err := recommend.NewEncoder(movieEnc.Classes)
	if err != nil {
		return nil, fmt.Errorf("movie encoder: %w", err)
	}

	interactions, err := buildCSR(&matrix, users.Len(), items.Len())
	if err != nil {
		return nil, fmt.Errorf("interaction matrix: %w", err)
	}

	if len(factors.UserFactors) != users.Len() {
		return nil, fmt.Errorf("user factors have %d rows, user encoder has %d classes",
			len(factors.UserFactors), users.Len())
	}
	if len(factors.ItemFactors) != items.Len() {
		return nil, fmt.Errorf("item factors have %d rows, interaction matrix has %d items",
			len(factors.ItemFactors), items.Len())
	}
	als, err := algorithms.NewALS(factors.UserFactors, factors.ItemFactors)
	if err != nil {
		return nil, fmt.Errorf("factor model: %w", err)
	}

	catalog, err := recommend.NewCatalog(movies)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	genres, err := algorithms.NewGenreMatrix(items, catalog, items.Len())
	if err != nil {
		return nil, fmt.Errorf("genre matrix: %w", err)
	}

	snap := &recommend.Snapshot{
		Factors:      als,
		Genres:       genres,
		Users:        users,
		Movies:       items,
		Interactions: interactions,
		Catalog:      catalog,
		Fingerprint:  hex.EncodeToString(h.Sum(nil)),
		LoadedAt:     time.Now(),
		Source:       p.Dir,
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return snap, nil
}

func loadJSON(ctx context.Context, path string, h hash.Hash, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := readArtifact(path, h)
	if err != nil {
		return err
	}
	return decodeJSON(path, data, v)
}

// buildCSR checks the declared shape against the encoders before building.
func buildCSR(m *csrFile, nUsers, nItems int) (*algorithms.CSR, error) {
	if len(m.Shape) != 2 {
		return nil, fmt.Errorf("shape must have 2 dimensions, got %d", len(m.Shape))
	}
	rows, cols := m.Shape[0], m.Shape[1]
	if rows != nUsers {
		return nil, fmt.Errorf("%d rows, user encoder has %d classes", rows, nUsers)
	}
	if cols != nItems {
		return nil, fmt.Errorf("%d columns, movie encoder has %d classes", cols, nItems)
	}
	if m.Data != nil && len(m.Data) != len(m.Indices) {
		return nil, fmt.Errorf("data length %d != indices length %d", len(m.Data), len(m.Indices))
	}
	return algorithms.NewCSR(rows, cols, m.Indptr, m.Indices)
}
