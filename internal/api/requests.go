// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmix/internal/recommend"
	"github.com/tomtom215/reelmix/internal/validation"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// RecommendRequest is the POST /recommend body. Omitted k and alpha fall back
// to the engine defaults.
type RecommendRequest struct {
	UserID *int     `json:"user_id" validate:"required"`
	K      *int     `json:"k,omitempty" validate:"omitempty,gte=1"`
	Alpha  *float64 `json:"alpha,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// RecommendResponse is the POST /recommend reply.
type RecommendResponse struct {
	UserID          int                  `json:"user_id"`
	Recommendations []RecommendationItem `json:"recommendations"`
}

// RecommendationItem is one movie in RecommendResponse.
type RecommendationItem struct {
	MovieID int      `json:"movie_id"`
	Title   string   `json:"title"`
	Genres  []string `json:"genres"`
}

// toEngineRequest converts a validated body.
func (req *RecommendRequest) toEngineRequest(requestID string) recommend.Request {
	out := recommend.Request{
		UserID:    *req.UserID,
		Alpha:     req.Alpha,
		RequestID: requestID,
	}
	if req.K != nil {
		out.K = *req.K
	}
	return out
}

func newRecommendResponse(resp *recommend.Response) RecommendResponse {
	items := make([]RecommendationItem, len(resp.Items))
	for i, it := range resp.Items {
		genres := it.Genres
		if genres == nil {
			genres = []string{}
		}
		items[i] = RecommendationItem{MovieID: it.MovieID, Title: it.Title, Genres: genres}
	}
	return RecommendResponse{UserID: resp.UserID, Recommendations: items}
}

// errInvalidJSON marks body decoding failures.
var errInvalidJSON = errors.New("invalid JSON body")

// decodeRecommendRequest reads and validates the body. It returns either an
// errInvalidJSON-wrapped error or a *validation.RequestValidationError.
func decodeRecommendRequest(w http.ResponseWriter, r *http.Request) (*RecommendRequest, error) {
	var req RecommendRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: %s", errInvalidJSON, err.Error())
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, verr
	}
	return &req, nil
}

// SearchRequest holds the query parameters of the search route.
type SearchRequest struct {
	Query string `form:"q" validate:"max=200"`
	Genre string `form:"genre" validate:"max=64"`
	Limit int    `form:"limit" validate:"gte=0,lte=100"`
}

func parseSearchRequest(r *http.Request) (*SearchRequest, error) {
	q := r.URL.Query()
	req := &SearchRequest{
		Query: strings.TrimSpace(q.Get("q")),
		Genre: strings.TrimSpace(q.Get("genre")),
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("limit must be an integer, got %q", raw)
		}
		req.Limit = limit
	}
	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, verr
	}
	return req, nil
}
