// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package metrics registers the Prometheus collectors for Reelmix and offers
// small helpers so call sites do not deal with label ordering.
//
// Collectors are registered on the default registry through promauto and are
// exposed by the API server at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Engine Metrics
	RecommendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmix_recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // "ok", "cache_hit", "unknown_user", "invalid", "not_ready", "error"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelmix_recommend_duration_seconds",
			Help:    "Time spent scoring and blending one recommendation request",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RecommendCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelmix_recommend_candidates",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "memory", "badger"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	// Artifact Metrics
	ArtifactLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmix_artifact_loads_total",
			Help: "Total number of artifact load attempts by result",
		},
		[]string{"result"}, // "success", "failure"
	)

	ArtifactLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelmix_artifact_load_duration_seconds",
			Help:    "Time spent loading and validating the artifact set",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
	)

	ArtifactLastLoadTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmix_artifact_last_load_timestamp_seconds",
			Help: "Unix time of the last successful artifact load",
		},
	)

	SnapshotSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reelmix_snapshot_size",
			Help: "Size of the loaded snapshot by dimension",
		},
		[]string{"dimension"}, // "users", "items", "genres", "movies", "factors"
	)

	// Search Metrics
	SearchQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelmix_search_queries_total",
			Help: "Total number of movie search queries",
		},
	)

	SearchIndexDocuments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmix_search_index_documents",
			Help: "Number of movies in the search index",
		},
	)

	// API client (UI process) Metrics
	ClientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmix_client_requests_total",
			Help: "Total number of UI to API calls by result",
		},
		[]string{"result"}, // "success", "api_error", "transport_error", "circuit_open"
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements active request counter
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one engine call. Duration is skipped for cache hits
// and failures so the histogram reflects scoring time only.
func RecordRecommendation(outcome string, duration time.Duration, returned int) {
	RecommendRequestsTotal.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		RecommendDuration.Observe(duration.Seconds())
		RecommendCandidates.Observe(float64(returned))
	}
}

// RecordCacheLookup records a hit or a miss for the given backend.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

// RecordArtifactLoad records a load attempt. On success the last-load
// timestamp is moved to loadedAt.
func RecordArtifactLoad(duration time.Duration, loadedAt time.Time, err error) {
	ArtifactLoadDuration.Observe(duration.Seconds())
	if err != nil {
		ArtifactLoadsTotal.WithLabelValues("failure").Inc()
		return
	}
	ArtifactLoadsTotal.WithLabelValues("success").Inc()
	ArtifactLastLoadTimestamp.Set(float64(loadedAt.Unix()))
}

// UpdateSnapshotSize publishes the dimensions of the active snapshot.
func UpdateSnapshotSize(users, items, genres, movies, factors int) {
	SnapshotSize.WithLabelValues("users").Set(float64(users))
	SnapshotSize.WithLabelValues("items").Set(float64(items))
	SnapshotSize.WithLabelValues("genres").Set(float64(genres))
	SnapshotSize.WithLabelValues("movies").Set(float64(movies))
	SnapshotSize.WithLabelValues("factors").Set(float64(factors))
}

// RecordClientCall records the result of one UI to API call.
func RecordClientCall(result string) {
	ClientRequestsTotal.WithLabelValues(result).Inc()
}
