// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmix/internal/metrics"
)

// ResponseCache stores encoded responses. cache.Store satisfies it.
type ResponseCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Purge() error
}

// Engine serves hybrid recommendations from the current Snapshot.
// It is safe for concurrent use.
type Engine struct {
	config Config
	logger zerolog.Logger

	snapshot atomic.Pointer[Snapshot]
	cache    ResponseCache

	listenersMu sync.Mutex
	listeners   []func(*Snapshot)

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	unknownUsers atomic.Int64
	errorCount   atomic.Int64
	swaps        atomic.Int64
	scoredCount  atomic.Int64
	latencyUS    atomic.Int64
}

// NewEngine creates an engine with no snapshot. cache may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg Config, cache ResponseCache, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Engine{
		config: cfg,
		cache:  cache,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Swap installs snap as the active snapshot, purges the response cache and
// notifies listeners. snap must pass Validate.
func (e *Engine) Swap(snap *Snapshot) error {
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("reject snapshot: %w", err)
	}

	prev := e.snapshot.Swap(snap)
	e.swaps.Add(1)

	if e.cache != nil {
		if err := e.cache.Purge(); err != nil {
			e.logger.Warn().Err(err).Msg("failed to purge response cache after swap")
		}
	}

	info := snap.Info()
	metrics.UpdateSnapshotSize(info.Users, info.Items, info.Genres, info.Movies, info.Factors)

	event := e.logger.Info().
		Str("fingerprint", info.Fingerprint).
		Int("users", info.Users).
		Int("items", info.Items).
		Int("genres", info.Genres).
		Int("movies", info.Movies)
	if prev != nil {
		event = event.Str("previous_fingerprint", prev.Fingerprint)
	}
	event.Msg("snapshot installed")

	e.listenersMu.Lock()
	listeners := append([]func(*Snapshot){}, e.listeners...)
	e.listenersMu.Unlock()
	for _, fn := range listeners {
		fn(snap)
	}
	return nil
}

// OnSwap registers fn to run after every Swap. When a snapshot is already
// installed fn is called with it immediately.
func (e *Engine) OnSwap(fn func(*Snapshot)) {
	e.listenersMu.Lock()
	e.listeners = append(e.listeners, fn)
	e.listenersMu.Unlock()

	if snap := e.snapshot.Load(); snap != nil {
		fn(snap)
	}
}

// Snapshot returns the active snapshot or nil.
func (e *Engine) Snapshot() *Snapshot {
	return e.snapshot.Load()
}

// Ready reports whether a snapshot is installed.
func (e *Engine) Ready() bool {
	return e.snapshot.Load() != nil
}

// Recommend returns up to k movies for req.UserID.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	snap := e.snapshot.Load()
	if snap == nil {
		metrics.RecordRecommendation("not_ready", 0, 0)
		return nil, ErrNotReady
	}

	req, alpha, err := e.prepareRequest(req)
	if err != nil {
		metrics.RecordRecommendation("invalid", 0, 0)
		return nil, err
	}
	logger := e.createRequestLogger(req, alpha)

	key := e.cacheKey(snap, req, alpha)
	if resp := e.tryGetCachedResponse(key, req, start, logger); resp != nil {
		metrics.RecordRecommendation("cache_hit", 0, len(resp.Items))
		return resp, nil
	}

	items, candidates, err := e.score(ctx, snap, req, alpha)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownUser):
			e.unknownUsers.Add(1)
			metrics.RecordRecommendation("unknown_user", 0, 0)
			logger.Debug().Msg("unknown user")
		default:
			e.errorCount.Add(1)
			metrics.RecordRecommendation("error", 0, 0)
		}
		return nil, err
	}

	resp := &Response{
		UserID: req.UserID,
		Items:  items,
		Metadata: ResponseMetadata{
			RequestID:   req.RequestID,
			K:           req.K,
			Alpha:       alpha,
			Order:       e.config.Order,
			Candidates:  candidates,
			Fingerprint: snap.Fingerprint,
			Timestamp:   time.Now(),
		},
	}

	elapsed := time.Since(start)
	resp.Metadata.LatencyMS = elapsed.Milliseconds()
	e.scoredCount.Add(1)
	e.latencyUS.Add(elapsed.Microseconds())
	metrics.RecordRecommendation("ok", elapsed, len(items))

	e.cacheResponse(key, resp, logger)

	logger.Debug().
		Int("candidates", candidates).
		Int("returned", len(items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest applies defaults and limits and resolves alpha.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) (Request, float64, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}

	switch {
	case req.K < 0:
		return req, 0, fmt.Errorf("%w: k must be positive, got %d", ErrInvalidRequest, req.K)
	case req.K == 0:
		req.K = e.config.DefaultK
	case req.K > e.config.MaxK:
		req.K = e.config.MaxK
	}

	alpha := e.config.DefaultAlpha
	if req.Alpha != nil {
		alpha = *req.Alpha
	}
	if alpha < 0 || alpha > 1 {
		return req, 0, fmt.Errorf("%w: alpha must be in [0,1], got %v", ErrInvalidRequest, alpha)
	}

	return req, alpha, nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request, alpha float64) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Int("user_id", req.UserID).
		Int("k", req.K).
		Float64("alpha", alpha).
		Logger()
}

// score runs the hybrid pipeline and returns the final list plus the number
// of factor-model candidates considered.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) score(ctx context.Context, snap *Snapshot, req Request, alpha float64) ([]Recommendation, int, error) {
	userIdx, ok := snap.Users.Transform(req.UserID)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownUser, req.UserID)
	}

	liked := snap.Interactions.Row(userIdx)

	candidates, err := snap.Factors.Recommend(ctx, userIdx, liked, req.K)
	if err != nil {
		return nil, 0, fmt.Errorf("factor model: %w", err)
	}
	if len(candidates) == 0 {
		return []Recommendation{}, 0, nil
	}

	items := make([]int, len(candidates))
	alsRaw := make([]float64, len(candidates))
	for i, c := range candidates {
		items[i] = c.Item
		alsRaw[i] = c.Score
	}

	genreRaw := make([]float64, len(candidates))
	if profile := snap.Genres.Profile(liked); profile != nil {
		genreRaw = snap.Genres.Scores(profile, items)
	}

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	als := Normalize(alsRaw)
	genre := Normalize(genreRaw)
	final := Blend(als, genre, alpha)

	recs := make([]Recommendation, 0, len(candidates))
	for _, pos := range Rank(final) {
		movieID, ok := snap.Movies.InverseTransform(items[pos])
		if !ok {
			continue
		}
		movie, ok := snap.Catalog.Get(movieID)
		if !ok {
			continue
		}
		recs = append(recs, Recommendation{
			MovieID: movie.ID,
			Title:   movie.Title,
			Genres:  movie.Genres,
			Scores:  Scores{ALS: als[pos], Genre: genre[pos], Final: final[pos]},
		})
	}

	if e.config.Order == OrderMovieID {
		sort.SliceStable(recs, func(i, j int) bool { return recs[i].MovieID < recs[j].MovieID })
	}
	if len(recs) > req.K {
		recs = recs[:req.K]
	}
	return recs, len(candidates), nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) cacheKey(snap *Snapshot, req Request, alpha float64) string {
	return snap.Fingerprint + "|" +
		strconv.Itoa(req.UserID) + "|" +
		strconv.Itoa(req.K) + "|" +
		strconv.FormatFloat(alpha, 'g', -1, 64) + "|" +
		e.config.Order
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) tryGetCachedResponse(key string, req Request, start time.Time, logger zerolog.Logger) *Response {
	if e.cache == nil {
		return nil
	}

	data, ok := e.cache.Get(key)
	if !ok {
		e.cacheMisses.Add(1)
		return nil
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		logger.Warn().Err(err).Msg("discarding undecodable cache entry")
		e.cacheMisses.Add(1)
		return nil
	}

	e.cacheHits.Add(1)
	resp.Metadata.RequestID = req.RequestID
	resp.Metadata.CacheHit = true
	resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
	resp.Metadata.Timestamp = time.Now()
	logger.Debug().Msg("cache hit")
	return &resp
}

func (e *Engine) cacheResponse(key string, resp *Response, logger zerolog.Logger) {
	if e.cache == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to encode response for cache")
		return
	}
	e.cache.Set(key, data)
}

// GetMetrics returns a snapshot of the engine counters.
func (e *Engine) GetMetrics() Metrics {
	m := Metrics{
		RequestCount: e.requestCount.Load(),
		CacheHits:    e.cacheHits.Load(),
		CacheMisses:  e.cacheMisses.Load(),
		UnknownUsers: e.unknownUsers.Load(),
		ErrorCount:   e.errorCount.Load(),
		Swaps:        e.swaps.Load(),
	}
	if n := e.scoredCount.Load(); n > 0 {
		m.AverageLatencyMS = float64(e.latencyUS.Load()) / float64(n) / 1000
	}
	return m
}

// GetConfig returns the engine configuration.
func (e *Engine) GetConfig() Config {
	return e.config
}

// Status reports readiness, the active snapshot and counters.
func (e *Engine) Status() Status {
	st := Status{
		Config:  e.GetConfig(),
		Metrics: e.GetMetrics(),
	}
	if snap := e.snapshot.Load(); snap != nil {
		info := snap.Info()
		st.Ready = true
		st.Snapshot = &info
	}
	return st
}
