// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package recommend

import "sort"

// normEpsilon keeps min-max normalization finite when all scores are equal.
const normEpsilon = 1e-8

// Normalize rescales scores to [0,1) as (x-min)/(max-min+1e-8).
// A constant input maps to all zeros. The input is not modified.
func Normalize(scores []float64) []float64 {
	out := make([]float64, len(scores))
	if len(scores) == 0 {
		return out
	}

	lo, hi := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}

	span := hi - lo + normEpsilon
	for i, s := range scores {
		out[i] = (s - lo) / span
	}
	return out
}

// Blend returns alpha*als + (1-alpha)*genre element-wise.
// The slices must have equal length.
func Blend(als, genre []float64, alpha float64) []float64 {
	out := make([]float64, len(als))
	for i := range als {
		out[i] = alpha*als[i] + (1-alpha)*genre[i]
	}
	return out
}

// Rank returns the positions of scores ordered by descending score.
// Equal scores keep their input order.
func Rank(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	return order
}
