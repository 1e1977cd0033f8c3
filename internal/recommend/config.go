// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package recommend

import "fmt"

// Result orderings.
const (
	// OrderMovieID sorts the final list by ascending movie ID.
	OrderMovieID = "movie_id"
	// OrderScore keeps the blended relevance order.
	OrderScore = "score"
)

// Config holds the engine's request defaults and limits.
type Config struct {
	DefaultK     int     `json:"default_k"`
	MaxK         int     `json:"max_k"`
	DefaultAlpha float64 `json:"default_alpha"`
	Order        string  `json:"order"`
}

// DefaultConfig returns k=10, max_k=100, alpha=0.7 and movie ID ordering.
func DefaultConfig() Config {
	return Config{
		DefaultK:     10,
		MaxK:         100,
		DefaultAlpha: 0.7,
		Order:        OrderMovieID,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.MaxK < 1 {
		return fmt.Errorf("max_k must be positive, got %d", c.MaxK)
	}
	if c.DefaultK < 1 || c.DefaultK > c.MaxK {
		return fmt.Errorf("default_k must be in [1,%d], got %d", c.MaxK, c.DefaultK)
	}
	if c.DefaultAlpha < 0 || c.DefaultAlpha > 1 {
		return fmt.Errorf("default_alpha must be in [0,1], got %v", c.DefaultAlpha)
	}
	if c.Order != OrderMovieID && c.Order != OrderScore {
		return fmt.Errorf("order must be %q or %q, got %q", OrderMovieID, OrderScore, c.Order)
	}
	return nil
}
