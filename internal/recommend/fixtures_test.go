// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package recommend

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// fakeFactors returns a fixed ranking per user, filtered and truncated like ALS.
type fakeFactors struct {
	ranked map[int][]Candidate
	users  int
	items  int
	err    error
	calls  int
	mu     sync.Mutex
}

func (f *fakeFactors) Recommend(_ context.Context, user int, liked []int, n int) ([]Candidate, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	skip := make(map[int]bool, len(liked))
	for _, i := range liked {
		skip[i] = true
	}
	out := []Candidate{}
	for _, c := range f.ranked[user] {
		if skip[c.Item] {
			continue
		}
		out = append(out, c)
		if len(out) == n {
			break
		}
	}
	return out, nil
}

func (f *fakeFactors) Users() int   { return f.users }
func (f *fakeFactors) Items() int   { return f.items }
func (f *fakeFactors) Factors() int { return 2 }

func (f *fakeFactors) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeGenres is a dense item x genre matrix.
type fakeGenres struct {
	labels []string
	rows   [][]float64
}

func (g *fakeGenres) Profile(items []int) []float64 {
	if len(items) == 0 {
		return nil
	}
	p := make([]float64, len(g.labels))
	for _, i := range items {
		for j, v := range g.rows[i] {
			p[j] += v
		}
	}
	for j := range p {
		p[j] /= float64(len(items))
	}
	return p
}

func (g *fakeGenres) Scores(profile []float64, items []int) []float64 {
	out := make([]float64, len(items))
	for k, i := range items {
		for j, v := range g.rows[i] {
			out[k] += v * profile[j]
		}
	}
	return out
}

func (g *fakeGenres) Genres() []string { return g.labels }
func (g *fakeGenres) Items() int       { return len(g.rows) }

// fakeMatrix maps users to liked item indices.
type fakeMatrix struct {
	rows  [][]int
	items int
}

func (m *fakeMatrix) Row(u int) []int { return m.rows[u] }
func (m *fakeMatrix) Shape() (int, int) {
	return len(m.rows), m.items
}
func (m *fakeMatrix) NNZ() int {
	n := 0
	for _, r := range m.rows {
		n += len(r)
	}
	return n
}

// mapCache is a ResponseCache backed by a map.
type mapCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	purges int
}

func newMapCache() *mapCache { return &mapCache{data: map[string][]byte{}} }

func (c *mapCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *mapCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
}

func (c *mapCache) Purge() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = map[string][]byte{}
	c.purges++
	return nil
}

// testSnapshot builds a five-movie world:
//
//	item 0 -> movie 1 Action
//	item 1 -> movie 2 Comedy
//	item 2 -> movie 3 Drama
//	item 3 -> movie 4 Action|Drama
//	item 4 -> movie 5 Comedy
//
// User 10 liked item 0, user 20 liked items 1 and 4, user 30 liked nothing.
// The factor model ranks items 1 > 2 > 3 > 4 > 0 for every user.
func testSnapshot(t *testing.T) (*Snapshot, *fakeFactors) {
	t.Helper()

	users, err := NewEncoder([]int{10, 20, 30})
	if err != nil {
		t.Fatalf("NewEncoder(users): %v", err)
	}
	movies, err := NewEncoder([]int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("NewEncoder(movies): %v", err)
	}
	catalog, err := NewCatalog([]Movie{
		{ID: 1, Title: "Heat (1995)", Genres: []string{"Action"}},
		{ID: 2, Title: "Clerks (1994)", Genres: []string{"Comedy"}},
		{ID: 3, Title: "Fargo (1996)", Genres: []string{"Drama"}},
		{ID: 4, Title: "Ronin (1998)", Genres: []string{"Action", "Drama"}},
		{ID: 5, Title: "Big (1988)", Genres: []string{"Comedy"}},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	ranking := []Candidate{{1, 0.9}, {2, 0.8}, {3, 0.5}, {4, 0.1}, {0, 0.05}}
	factors := &fakeFactors{
		ranked: map[int][]Candidate{0: ranking, 1: ranking, 2: ranking},
		users:  3,
		items:  5,
	}

	snap := &Snapshot{
		Factors: factors,
		Genres: &fakeGenres{
			labels: []string{"Action", "Comedy", "Drama"},
			rows: [][]float64{
				{1, 0, 0},
				{0, 1, 0},
				{0, 0, 1},
				{1, 0, 1},
				{0, 1, 0},
			},
		},
		Users:        users,
		Movies:       movies,
		Interactions: &fakeMatrix{rows: [][]int{{0}, {1, 4}, {}}, items: 5},
		Catalog:      catalog,
		Fingerprint:  "fp-1",
		LoadedAt:     time.Now(),
		Source:       "testdata",
	}
	return snap, factors
}

func newTestEngine(t *testing.T, order string, cache ResponseCache) (*Engine, *fakeFactors) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Order = order

	engine, err := NewEngine(cfg, cache, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	snap, factors := testSnapshot(t)
	if err := engine.Swap(snap); err != nil {
		t.Fatalf("Swap: %v", err)
	}
	return engine, factors
}

func alphaPtr(v float64) *float64 { return &v }

func movieIDs(items []Recommendation) []int {
	ids := make([]int, len(items))
	for i, r := range items {
		ids[i] = r.MovieID
	}
	return ids
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
