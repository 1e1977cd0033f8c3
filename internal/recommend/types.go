// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package recommend

import (
	"context"
	"time"
)

// Movie is one row of the metadata file.
type Movie struct {
	ID     int      `json:"movie_id"`
	Title  string   `json:"title"`
	Genres []string `json:"genres"`
}

// Candidate is an item index with its raw factor-model score.
type Candidate struct {
	Item  int
	Score float64
}

// FactorModel produces candidates from pretrained latent factors.
type FactorModel interface {
	// Recommend returns up to n items not in liked, by descending score.
	Recommend(ctx context.Context, user int, liked []int, n int) ([]Candidate, error)

	// Users returns the number of user factor rows.
	Users() int

	// Items returns the number of item factor rows.
	Items() int

	// Factors returns the latent dimension.
	Factors() int
}

// GenreModel scores items against a user's genre profile.
type GenreModel interface {
	// Profile returns the mean genre vector over items, or nil when items is empty.
	Profile(items []int) []float64

	// Scores returns the dot product of each item's genre vector with profile.
	Scores(profile []float64, items []int) []float64

	// Genres returns the column labels in lexicographic order.
	Genres() []string

	// Items returns the row count.
	Items() int
}

// InteractionMatrix is the read-only user by item training matrix.
type InteractionMatrix interface {
	// Row returns the item indices user interacted with.
	Row(user int) []int

	// Shape returns (users, items).
	Shape() (int, int)

	// NNZ returns the number of stored interactions.
	NNZ() int
}

// Request is a recommendation request.
type Request struct {
	// UserID is the raw (external) user ID.
	UserID int

	// K is the number of results. Zero means the configured default.
	K int

	// Alpha weights the factor signal against the genre signal.
	// Nil means the configured default.
	Alpha *float64

	// RequestID is generated when empty.
	RequestID string
}

// Scores is the per-item breakdown of the blend.
type Scores struct {
	ALS   float64 `json:"als"`
	Genre float64 `json:"genre"`
	Final float64 `json:"final"`
}

// Recommendation is one recommended movie.
type Recommendation struct {
	MovieID int      `json:"movie_id"`
	Title   string   `json:"title"`
	Genres  []string `json:"genres"`
	Scores  Scores   `json:"scores"`
}

// Response is the result of Engine.Recommend.
type Response struct {
	UserID   int              `json:"user_id"`
	Items    []Recommendation `json:"items"`
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata carries diagnostics for a response.
type ResponseMetadata struct {
	RequestID   string    `json:"request_id"`
	K           int       `json:"k"`
	Alpha       float64   `json:"alpha"`
	Order       string    `json:"order"`
	Candidates  int       `json:"candidates"`
	LatencyMS   int64     `json:"latency_ms"`
	CacheHit    bool      `json:"cache_hit"`
	Fingerprint string    `json:"fingerprint"`
	Timestamp   time.Time `json:"timestamp"`
}

// Metrics are the engine's cumulative counters.
type Metrics struct {
	RequestCount     int64   `json:"request_count"`
	CacheHits        int64   `json:"cache_hits"`
	CacheMisses      int64   `json:"cache_misses"`
	UnknownUsers     int64   `json:"unknown_users"`
	ErrorCount       int64   `json:"error_count"`
	Swaps            int64   `json:"swaps"`
	AverageLatencyMS float64 `json:"average_latency_ms"`
}

// Status describes the engine for the status endpoint.
type Status struct {
	Ready    bool          `json:"ready"`
	Snapshot *SnapshotInfo `json:"snapshot,omitempty"`
	Config   Config        `json:"config"`
	Metrics  Metrics       `json:"metrics"`
}
