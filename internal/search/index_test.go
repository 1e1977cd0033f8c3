// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmix/internal/recommend"
)

func testCatalog(t *testing.T, movies ...recommend.Movie) *recommend.Catalog {
	t.Helper()
	if len(movies) == 0 {
		movies = []recommend.Movie{
			{ID: 1, Title: "Toy Story (1995)", Genres: []string{"Animation", "Children's", "Comedy"}},
			{ID: 2, Title: "Jumanji (1995)", Genres: []string{"Adventure", "Children's", "Fantasy"}},
			{ID: 6, Title: "Heat (1995)", Genres: []string{"Action", "Crime", "Thriller"}},
			{ID: 1831, Title: "Toy Soldiers (1991)", Genres: []string{"Action", "Drama"}},
		}
	}
	c, err := recommend.NewCatalog(movies)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx := NewIndex(zerolog.Nop())
	if err := idx.Rebuild("fp-1", testCatalog(t)); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func hitIDs(r *Result) map[int]bool {
	ids := make(map[int]bool, len(r.Hits))
	for _, h := range r.Hits {
		ids[h.MovieID] = true
	}
	return ids
}

func TestSearchNotReady(t *testing.T) {
	t.Parallel()
	idx := NewIndex(zerolog.Nop())
	if _, err := idx.Search(context.Background(), Params{Query: "toy"}); !errors.Is(err, ErrNotReady) {
		t.Errorf("err = %v, want ErrNotReady", err)
	}
	if _, err := idx.DocumentCount(); !errors.Is(err, ErrNotReady) {
		t.Errorf("DocumentCount err = %v, want ErrNotReady", err)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	t.Parallel()
	idx := newTestIndex(t)
	if _, err := idx.Search(context.Background(), Params{Query: "   "}); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("err = %v, want ErrEmptyQuery", err)
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()
	idx := newTestIndex(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		params Params
		want   []int
	}{
		{"title word", Params{Query: "toy"}, []int{1, 1831}},
		{"single match", Params{Query: "Heat"}, []int{6}},
		{"genre filter", Params{Query: "toy", Genre: "Drama"}, []int{1831}},
		{"genre only", Params{Genre: "Children's"}, []int{1, 2}},
		{"no match", Params{Query: "casablanca"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := idx.Search(ctx, tt.params)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			got := hitIDs(res)
			if len(got) != len(tt.want) {
				t.Fatalf("hits = %v, want %v", got, tt.want)
			}
			for _, id := range tt.want {
				if !got[id] {
					t.Errorf("missing movie %d in %v", id, got)
				}
			}
		})
	}
}

func TestSearchHitFields(t *testing.T) {
	t.Parallel()
	idx := newTestIndex(t)

	res, err := idx.Search(context.Background(), Params{Query: "jumanji"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res.Hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(res.Hits))
	}
	h := res.Hits[0]
	if h.MovieID != 2 || h.Title != "Jumanji (1995)" || h.Year != 1995 || len(h.Genres) != 3 {
		t.Errorf("hit = %+v", h)
	}
	if h.Score <= 0 {
		t.Errorf("score = %v, want > 0", h.Score)
	}
}

func TestSearchLimit(t *testing.T) {
	t.Parallel()
	idx := newTestIndex(t)

	res, err := idx.Search(context.Background(), Params{Query: "toy", Limit: 1})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res.Hits) != 1 || res.Total != 2 {
		t.Errorf("hits = %d total = %d, want 1 and 2", len(res.Hits), res.Total)
	}
}

func TestRebuildReplacesIndex(t *testing.T) {
	t.Parallel()
	idx := newTestIndex(t)

	snap := &recommend.Snapshot{
		Fingerprint: "fp-2",
		Catalog:     testCatalog(t, recommend.Movie{ID: 9, Title: "Fargo (1996)", Genres: []string{"Crime"}}),
	}
	idx.OnSwap(snap)

	if idx.Fingerprint() != "fp-2" {
		t.Errorf("Fingerprint = %q, want fp-2", idx.Fingerprint())
	}
	n, err := idx.DocumentCount()
	if err != nil || n != 1 {
		t.Errorf("DocumentCount = %d, %v; want 1", n, err)
	}

	res, err := idx.Search(context.Background(), Params{Query: "heat"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res.Hits) != 0 {
		t.Errorf("old movie still indexed: %+v", res.Hits)
	}
}

func TestReleaseYear(t *testing.T) {
	t.Parallel()
	tests := map[string]int{
		"Toy Story (1995)":           1995,
		"City of Lost Children, The": 0,
		"Seven (Se7en) (1995) ":      1995,
		"2001: A Space Odyssey":      0,
	}
	for title, want := range tests {
		if got := ReleaseYear(title); got != want {
			t.Errorf("ReleaseYear(%q) = %d, want %d", title, got, want)
		}
	}
}
