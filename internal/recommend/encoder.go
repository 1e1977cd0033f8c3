// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package recommend

import (
	"fmt"
	"sort"
)

// Encoder maps raw IDs to dense indices. The index of a raw ID is its
// position in the sorted class list.
type Encoder struct {
	classes []int
}

// NewEncoder builds an Encoder. classes must be strictly ascending.
func NewEncoder(classes []int) (*Encoder, error) {
	for i := 1; i < len(classes); i++ {
		if classes[i] <= classes[i-1] {
			return nil, fmt.Errorf("encoder classes not strictly ascending at position %d (%d after %d)",
				i, classes[i], classes[i-1])
		}
	}
	c := make([]int, len(classes))
	copy(c, classes)
	return &Encoder{classes: c}, nil
}

// Transform returns the dense index of raw.
func (e *Encoder) Transform(raw int) (int, bool) {
	i := sort.SearchInts(e.classes, raw)
	if i < len(e.classes) && e.classes[i] == raw {
		return i, true
	}
	return 0, false
}

// InverseTransform returns the raw ID at idx.
func (e *Encoder) InverseTransform(idx int) (int, bool) {
	if idx < 0 || idx >= len(e.classes) {
		return 0, false
	}
	return e.classes[idx], true
}

// Contains reports whether raw is a known class.
func (e *Encoder) Contains(raw int) bool {
	_, ok := e.Transform(raw)
	return ok
}

// Len returns the number of classes.
func (e *Encoder) Len() int {
	return len(e.classes)
}
