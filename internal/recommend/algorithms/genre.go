// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package algorithms

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/tomtom215/reelmix/internal/recommend"
)

// GenreMatrix is a binary items x genres matrix. Row i is 1 in every column
// whose genre is listed for the movie encoded as item i.
type GenreMatrix struct {
	labels []string
	items  int
	// m is nil when there are no items or no genres.
	m *mat.Dense
}

var _ recommend.GenreModel = (*GenreMatrix)(nil)

// NewGenreMatrix builds the matrix for nItems encoded items. Only movies known
// to the encoder contribute genres, and columns are sorted lexicographically.
// Items with no catalog entry get an all-zero row.
func NewGenreMatrix(movies *recommend.Encoder, catalog *recommend.Catalog, nItems int) (*GenreMatrix, error) {
	if movies.Len() != nItems {
		return nil, fmt.Errorf("movie encoder has %d classes, want %d items", movies.Len(), nItems)
	}

	seen := make(map[string]struct{})
	for _, mv := range catalog.Movies() {
		if !movies.Contains(mv.ID) {
			continue
		}
		for _, g := range mv.Genres {
			seen[g] = struct{}{}
		}
	}
	labels := make([]string, 0, len(seen))
	for g := range seen {
		labels = append(labels, g)
	}
	sort.Strings(labels)

	col := make(map[string]int, len(labels))
	for j, g := range labels {
		col[g] = j
	}

	gm := &GenreMatrix{labels: labels, items: nItems}
	if nItems == 0 || len(labels) == 0 {
		return gm, nil
	}

	gm.m = mat.NewDense(nItems, len(labels), nil)
	for _, mv := range catalog.Movies() {
		item, ok := movies.Transform(mv.ID)
		if !ok {
			continue
		}
		for _, g := range mv.Genres {
			gm.m.Set(item, col[g], 1)
		}
	}
	return gm, nil
}

// Profile returns the column means over the given item rows, or nil when
// items is empty.
func (g *GenreMatrix) Profile(items []int) []float64 {
	if len(items) == 0 {
		return nil
	}
	profile := make([]float64, len(g.labels))
	if g.m == nil {
		return profile
	}
	for _, i := range items {
		floats.Add(profile, g.m.RawRowView(i))
	}
	floats.Scale(1/float64(len(items)), profile)
	return profile
}

// Scores returns row(i) · profile for each item.
func (g *GenreMatrix) Scores(profile []float64, items []int) []float64 {
	out := make([]float64, len(items))
	if g.m == nil {
		return out
	}
	for k, i := range items {
		out[k] = floats.Dot(g.m.RawRowView(i), profile)
	}
	return out
}

// Genres returns the column labels.
func (g *GenreMatrix) Genres() []string {
	return g.labels
}

// Items returns the row count.
func (g *GenreMatrix) Items() int {
	return g.items
}
