// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/reelmix/internal/logging"
	"github.com/tomtom215/reelmix/internal/recommend"
	"github.com/tomtom215/reelmix/internal/search"
	"github.com/tomtom215/reelmix/internal/validation"
)

// Recommender is the engine surface the handlers use. *recommend.Engine
// satisfies it.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
	Ready() bool
	Status() recommend.Status
}

// Searcher is the title index. *search.Index satisfies it.
type Searcher interface {
	Search(ctx context.Context, params search.Params) (*search.Result, error)
}

// Handler holds the route handlers.
type Handler struct {
	engine    Recommender
	search    Searcher
	timeout   time.Duration
	startTime time.Time
}

// NewHandler creates a Handler. searcher may be nil when search is disabled.
// timeout bounds each recommendation; zero means no limit beyond the request.
func NewHandler(engine Recommender, searcher Searcher, timeout time.Duration) *Handler {
	return &Handler{
		engine:    engine,
		search:    searcher,
		timeout:   timeout,
		startTime: time.Now(),
	}
}

// Root handles GET /.
//
// @Summary Service banner
// @Description Returns a fixed message confirming the API process is up.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "API is running"
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "API is running"})
}

// Recommend handles POST /recommend.
//
// @Summary Recommend movies for a user
// @Description Blends the user's collaborative-filtering scores with genre affinity and returns the top k unseen movies.
// @Description alpha weights the factor signal against the genre signal (1.0 = factors only).
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "user_id is required; k and alpha fall back to configured defaults"
// @Success 200 {object} RecommendResponse "Recommendations in the configured order"
// @Failure 400 {object} APIResponse "Malformed body or out-of-range k/alpha"
// @Failure 404 {object} APIResponse "User ID not found"
// @Failure 429 {object} APIResponse "Rate limit exceeded"
// @Failure 503 {object} APIResponse "Model artifacts not loaded"
// @Failure 500 {object} APIResponse "Internal server error"
// @Router /recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	body, err := decodeRecommendRequest(w, r)
	if err != nil {
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			apiErr := verr.ToAPIError()
			respondErrorDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
			return
		}
		respondError(w, r, http.StatusBadRequest, CodeInvalidJSON, "Request body must be a JSON object with an integer user_id", err)
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	resp, err := h.engine.Recommend(ctx, body.toEngineRequest(logging.RequestIDFromContext(r.Context())))
	if err != nil {
		h.respondRecommendError(w, r, *body.UserID, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Int("user_id", resp.UserID).
		Int("returned", len(resp.Items)).
		Bool("cache_hit", resp.Metadata.CacheHit).
		Msg("recommendations served")

	writeJSON(w, r, http.StatusOK, newRecommendResponse(resp))
}

func (h *Handler) respondRecommendError(w http.ResponseWriter, r *http.Request, userID int, err error) {
	switch {
	case errors.Is(err, recommend.ErrUnknownUser):
		respondErrorDetails(w, r, http.StatusNotFound, CodeUnknownUser, "User ID not found",
			map[string]interface{}{"user_id": userID}, nil)
	case errors.Is(err, recommend.ErrInvalidRequest):
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
	case errors.Is(err, recommend.ErrNotReady):
		respondError(w, r, http.StatusServiceUnavailable, CodeServiceUnavailable, "Model artifacts are not loaded yet", err)
	default:
		respondError(w, r, http.StatusInternalServerError, CodeRecommendation, "Failed to generate recommendations", err)
	}
}

// HealthLive handles GET /health/live.
//
// @Summary Liveness check
// @Description Always 200 while the process serves HTTP. Includes uptime in seconds.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse "Process is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(h.startTime).Seconds(),
	}, Metadata{})
}

// HealthReady handles GET /health/ready. It is 503 until artifacts load.
//
// @Summary Readiness check
// @Description Reports whether model artifacts are loaded and recommendations can be served.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse "Artifacts loaded"
// @Failure 503 {object} APIResponse "Artifacts not loaded yet"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.engine.Ready()
	status, code := "ready", http.StatusOK
	if !ready {
		status, code = "not_ready", http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, &APIResponse{
		Status:   status,
		Data:     map[string]interface{}{"artifacts_loaded": ready},
		Metadata: Metadata{Timestamp: time.Now()},
	})
}

// ModelStatus handles GET /api/v1/model/status.
//
// @Summary Model status
// @Description Returns the active snapshot (fingerprint, shape, load time), engine defaults and request counters.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse{data=recommend.Status} "Engine status"
// @Router /api/v1/model/status [get]
func (h *Handler) ModelStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.engine.Status(), Metadata{})
}

// SearchMovies handles GET /api/v1/movies/search.
//
// @Summary Search the movie catalog
// @Description Full-text title search with an optional genre filter. At least one of q or genre is required.
// @Tags Search
// @Accept json
// @Produce json
// @Param q query string false "Title query" maxlength(200) example("toy story")
// @Param genre query string false "Exact genre filter" maxlength(64) example("Animation")
// @Param limit query int false "Maximum hits (0 uses the index default)" minimum(0) maximum(100)
// @Success 200 {object} APIResponse{data=search.Result} "Matching movies"
// @Failure 400 {object} APIResponse "Missing or invalid parameters"
// @Failure 503 {object} APIResponse "Search disabled or index not built"
// @Failure 500 {object} APIResponse "Internal server error"
// @Router /api/v1/movies/search [get]
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	if h.search == nil {
		respondError(w, r, http.StatusServiceUnavailable, CodeServiceUnavailable, "Search is disabled", nil)
		return
	}

	req, err := parseSearchRequest(r)
	if err != nil {
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			apiErr := verr.ToAPIError()
			respondErrorDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
			return
		}
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	start := time.Now()
	res, err := h.search.Search(r.Context(), search.Params{Query: req.Query, Genre: req.Genre, Limit: req.Limit})
	switch {
	case errors.Is(err, search.ErrEmptyQuery):
		respondError(w, r, http.StatusBadRequest, CodeValidation, "q or genre is required", nil)
		return
	case errors.Is(err, search.ErrNotReady):
		respondError(w, r, http.StatusServiceUnavailable, CodeServiceUnavailable, "Search index is not built yet", nil)
		return
	case err != nil:
		respondError(w, r, http.StatusInternalServerError, CodeSearch, "Search failed", err)
		return
	}

	respondJSON(w, r, http.StatusOK, res, Metadata{QueryTimeMS: time.Since(start).Milliseconds()})
}

// NotFound is the chi fallback for unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, CodeNotFound, "Route not found", nil)
}

// MethodNotAllowed is the chi fallback for known routes with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed", nil)
}
