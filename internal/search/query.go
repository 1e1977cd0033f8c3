// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/tomtom215/reelmix/internal/metrics"
)

// Limits for Params.Limit.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ErrEmptyQuery is returned when neither a query nor a genre is given.
var ErrEmptyQuery = errors.New("query or genre is required")

// Params configures a search.
type Params struct {
	Query string
	// Genre restricts hits to movies with this exact genre.
	Genre string
	Limit int
}

// Result is a page of hits.
type Result struct {
	Query  string `json:"query"`
	Total  uint64 `json:"total"`
	TookMS int64  `json:"took_ms"`
	Hits   []Hit  `json:"hits"`
}

// Hit is one matching movie.
type Hit struct {
	MovieID int      `json:"movie_id"`
	Title   string   `json:"title"`
	Genres  []string `json:"genres"`
	Year    int      `json:"year,omitempty"`
	Score   float64  `json:"score"`
}

// Search runs params against the current index.
func (i *Index) Search(ctx context.Context, params Params) (*Result, error) {
	params.Query = strings.TrimSpace(params.Query)
	if params.Query == "" && params.Genre == "" {
		return nil, ErrEmptyQuery
	}
	switch {
	case params.Limit <= 0:
		params.Limit = DefaultLimit
	case params.Limit > MaxLimit:
		params.Limit = MaxLimit
	}

	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.index == nil {
		return nil, ErrNotReady
	}

	metrics.SearchQueriesTotal.Inc()

	req := bleve.NewSearchRequestOptions(buildQuery(params), params.Limit, 0, false)
	req.SortBy([]string{"-_score", "_id"})

	res, err := i.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	out := &Result{
		Query:  params.Query,
		Total:  res.Total,
		TookMS: res.Took.Milliseconds(),
		Hits:   make([]Hit, 0, len(res.Hits)),
	}
	for _, h := range res.Hits {
		id, err := strconv.Atoi(h.ID)
		if err != nil {
			continue
		}
		m, ok := i.catalog.Get(id)
		if !ok {
			continue
		}
		out.Hits = append(out.Hits, Hit{
			MovieID: m.ID,
			Title:   m.Title,
			Genres:  m.Genres,
			Year:    ReleaseYear(m.Title),
			Score:   h.Score,
		})
	}
	return out, nil
}

// buildQuery matches the title three ways (stemmed, one-typo fuzzy, prefix)
// and ANDs in the genre filter.
func buildQuery(params Params) query.Query {
	var queries []query.Query

	if params.Query != "" {
		match := bleve.NewMatchQuery(params.Query)
		match.SetField(fieldTitle)
		match.SetBoost(3.0)

		fuzzy := bleve.NewFuzzyQuery(strings.ToLower(params.Query))
		fuzzy.SetFuzziness(1)
		fuzzy.SetField(fieldTitle)
		fuzzy.SetBoost(0.8)

		text := []query.Query{match, fuzzy}
		if len(params.Query) >= 2 {
			prefix := bleve.NewPrefixQuery(strings.ToLower(params.Query))
			prefix.SetField(fieldTitle)
			prefix.SetBoost(0.5)
			text = append(text, prefix)
		}
		queries = append(queries, bleve.NewDisjunctionQuery(text...))
	}

	if params.Genre != "" {
		genre := bleve.NewTermQuery(params.Genre)
		genre.SetField(fieldGenres)
		queries = append(queries, genre)
	}

	if len(queries) == 1 {
		return queries[0]
	}
	return bleve.NewConjunctionQuery(queries...)
}
