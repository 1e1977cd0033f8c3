// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/tomtom215/reelmix/internal/recommend"
)

const (
	fieldSep = "::"
	genreSep = "|"
)

// ParseMovies reads Latin-1 encoded movie_id::title::genres lines.
// Blank lines are skipped. An empty genres field yields no genres.
func ParseMovies(r io.Reader) ([]recommend.Movie, error) {
	scanner := bufio.NewScanner(charmap.ISO8859_1.NewDecoder().Reader(r))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var movies []recommend.Movie
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		movie, err := parseMovieLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		movies = append(movies, movie)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
	}
	return movies, nil
}

func parseMovieLine(line string) (recommend.Movie, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != 3 {
		return recommend.Movie{}, fmt.Errorf("expected 3 fields separated by %q, got %d", fieldSep, len(fields))
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return recommend.Movie{}, fmt.Errorf("invalid movie_id %q", fields[0])
	}

	var genres []string
	for _, g := range strings.Split(fields[2], genreSep) {
		if g = strings.TrimSpace(g); g != "" {
			genres = append(genres, g)
		}
	}

	return recommend.Movie{ID: id, Title: fields[1], Genres: genres}, nil
}
