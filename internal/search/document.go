// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"regexp"
	"strconv"

	"github.com/tomtom215/reelmix/internal/recommend"
)

// titleYear matches the trailing "(1995)" in MovieLens titles.
var titleYear = regexp.MustCompile(`\((\d{4})\)\s*$`)

// ReleaseYear extracts the year suffix from a title, or 0.
func ReleaseYear(title string) int {
	m := titleYear.FindStringSubmatch(title)
	if m == nil {
		return 0
	}
	y, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return y
}

func docID(movieID int) string {
	return strconv.Itoa(movieID)
}

// toDocument converts a movie to the map form bleve indexes.
func toDocument(m recommend.Movie) map[string]any { //nolint:gocritic // hugeParam: movie passed by value
	doc := map[string]any{
		fieldTitle:  m.Title,
		fieldGenres: m.Genres,
	}
	if y := ReleaseYear(m.Title); y > 0 {
		doc[fieldYear] = float64(y)
	}
	return doc
}
