// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package recommend

import (
	"fmt"
	"sort"
)

// Catalog is the movie metadata, indexed by movie ID.
type Catalog struct {
	byID   map[int]Movie
	sorted []Movie
}

// NewCatalog indexes movies. Duplicate IDs are rejected.
func NewCatalog(movies []Movie) (*Catalog, error) {
	c := &Catalog{
		byID:   make(map[int]Movie, len(movies)),
		sorted: make([]Movie, 0, len(movies)),
	}
	for _, m := range movies {
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate movie_id %d", m.ID)
		}
		c.byID[m.ID] = m
		c.sorted = append(c.sorted, m)
	}
	sort.Slice(c.sorted, func(i, j int) bool { return c.sorted[i].ID < c.sorted[j].ID })
	return c, nil
}

// Get returns the movie with the given ID.
func (c *Catalog) Get(id int) (Movie, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// Movies returns every movie ordered by ID. The slice must not be modified.
func (c *Catalog) Movies() []Movie {
	return c.sorted
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.sorted)
}
