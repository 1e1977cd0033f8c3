// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package algorithms

import (
	"fmt"

	"github.com/tomtom215/reelmix/internal/recommend"
)

// CSR is a compressed sparse row matrix of user interactions. Only the
// sparsity pattern is kept; row i's liked items are
// indices[indptr[i]:indptr[i+1]].
type CSR struct {
	rows    int
	cols    int
	indptr  []int
	indices []int
}

var _ recommend.InteractionMatrix = (*CSR)(nil)

// NewCSR validates and wraps a CSR pattern. The slices are not copied.
func NewCSR(rows, cols int, indptr, indices []int) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("invalid shape [%d,%d]", rows, cols)
	}
	if len(indptr) != rows+1 {
		return nil, fmt.Errorf("indptr length %d, want %d", len(indptr), rows+1)
	}
	if indptr[0] != 0 {
		return nil, fmt.Errorf("indptr[0] = %d, want 0", indptr[0])
	}
	for i := 1; i < len(indptr); i++ {
		if indptr[i] < indptr[i-1] {
			return nil, fmt.Errorf("indptr decreases at %d (%d < %d)", i, indptr[i], indptr[i-1])
		}
	}
	if last := indptr[rows]; last != len(indices) {
		return nil, fmt.Errorf("indptr[%d] = %d but %d indices", rows, last, len(indices))
	}
	for i, c := range indices {
		if c < 0 || c >= cols {
			return nil, fmt.Errorf("index %d at position %d outside [0,%d)", c, i, cols)
		}
	}
	return &CSR{rows: rows, cols: cols, indptr: indptr, indices: indices}, nil
}

// Row returns the column indices stored for user. An out-of-range user has
// no interactions. The returned slice must not be modified.
func (m *CSR) Row(user int) []int {
	if user < 0 || user >= m.rows {
		return nil
	}
	return m.indices[m.indptr[user]:m.indptr[user+1]]
}

// Shape returns (rows, cols).
func (m *CSR) Shape() (int, int) {
	return m.rows, m.cols
}

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int {
	return len(m.indices)
}
