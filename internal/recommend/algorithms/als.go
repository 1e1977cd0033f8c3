// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package algorithms

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/tomtom215/reelmix/internal/recommend"
)

// ALS serves a pretrained Alternating Least Squares factorization.
//
// The affinity of user u for item i is the dot product of their factor rows:
//
//	score(u, i) = X[u] · Y[i]
//
// X is users x factors and Y is items x factors.
type ALS struct {
	userFactors *mat.Dense
	itemFactors *mat.Dense
	factors     int
}

var _ recommend.FactorModel = (*ALS)(nil)

// NewALS builds a model from row-major factor tables. Every row of both
// tables must have the same, non-zero width.
func NewALS(userFactors, itemFactors [][]float64) (*ALS, error) {
	if len(userFactors) == 0 || len(itemFactors) == 0 {
		return nil, errors.New("factor tables must not be empty")
	}
	width := len(userFactors[0])
	if width == 0 {
		return nil, errors.New("factor rows must not be empty")
	}

	users, err := denseFromRows(userFactors, width)
	if err != nil {
		return nil, fmt.Errorf("user factors: %w", err)
	}
	items, err := denseFromRows(itemFactors, width)
	if err != nil {
		return nil, fmt.Errorf("item factors: %w", err)
	}

	return &ALS{userFactors: users, itemFactors: items, factors: width}, nil
}

func denseFromRows(rows [][]float64, width int) (*mat.Dense, error) {
	flat := make([]float64, 0, len(rows)*width)
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("row %d has %d factors, want %d", i, len(r), width)
		}
		flat = append(flat, r...)
	}
	return mat.NewDense(len(rows), width, flat), nil
}

// Recommend returns the top n items for user by descending affinity,
// skipping liked. Ties are broken by ascending item index.
func (a *ALS) Recommend(ctx context.Context, user int, liked []int, n int) ([]recommend.Candidate, error) {
	nUsers, _ := a.userFactors.Dims()
	if user < 0 || user >= nUsers {
		return nil, fmt.Errorf("user index %d outside [0,%d)", user, nUsers)
	}
	if n <= 0 {
		return []recommend.Candidate{}, nil
	}

	scores := a.Scores(user)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	skip := make(map[int]struct{}, len(liked))
	for _, i := range liked {
		skip[i] = struct{}{}
	}

	candidates := make([]recommend.Candidate, 0, max(len(scores)-len(skip), 0))
	for i, s := range scores {
		if _, ok := skip[i]; ok {
			continue
		}
		candidates = append(candidates, recommend.Candidate{Item: i, Score: s})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Item < candidates[j].Item
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates, nil
}

// Scores returns the affinity of user for every item, Y · X[u].
func (a *ALS) Scores(user int) []float64 {
	nItems, _ := a.itemFactors.Dims()
	u := a.userFactors.RowView(user)
	out := mat.NewVecDense(nItems, nil)
	out.MulVec(a.itemFactors, u)
	return out.RawVector().Data
}

// Users returns the number of user factor rows.
func (a *ALS) Users() int {
	r, _ := a.userFactors.Dims()
	return r
}

// Items returns the number of item factor rows.
func (a *ALS) Items() int {
	r, _ := a.itemFactors.Dims()
	return r
}

// Factors returns the latent dimension.
func (a *ALS) Factors() int {
	return a.factors
}
