// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package recommend

import (
	"errors"
	"fmt"
	"time"
)

// Snapshot bundles one consistent artifact set. It is immutable once built.
type Snapshot struct {
	Factors      FactorModel
	Genres       GenreModel
	Users        *Encoder
	Movies       *Encoder
	Interactions InteractionMatrix
	Catalog      *Catalog

	// Fingerprint is the hex SHA-256 over the artifact files.
	Fingerprint string
	LoadedAt    time.Time
	// Source is the artifacts directory the snapshot was read from.
	Source string
}

// SnapshotInfo summarizes a snapshot for status reporting.
type SnapshotInfo struct {
	Fingerprint  string    `json:"fingerprint"`
	LoadedAt     time.Time `json:"loaded_at"`
	Source       string    `json:"source"`
	Users        int       `json:"users"`
	Items        int       `json:"items"`
	Genres       int       `json:"genres"`
	Movies       int       `json:"movies"`
	Factors      int       `json:"factors"`
	Interactions int       `json:"interactions"`
}

// Validate checks that every component is present and dimensions agree.
func (s *Snapshot) Validate() error {
	if s == nil {
		return errors.New("nil snapshot")
	}
	if s.Factors == nil || s.Genres == nil || s.Users == nil || s.Movies == nil ||
		s.Interactions == nil || s.Catalog == nil {
		return errors.New("snapshot is missing a component")
	}

	nUsers, nItems := s.Interactions.Shape()
	switch {
	case nUsers != s.Users.Len():
		return fmt.Errorf("interaction rows %d != user encoder size %d", nUsers, s.Users.Len())
	case nItems != s.Movies.Len():
		return fmt.Errorf("interaction columns %d != movie encoder size %d", nItems, s.Movies.Len())
	case s.Factors.Users() != nUsers:
		return fmt.Errorf("user factor rows %d != users %d", s.Factors.Users(), nUsers)
	case s.Factors.Items() != nItems:
		return fmt.Errorf("item factor rows %d != items %d", s.Factors.Items(), nItems)
	case s.Genres.Items() != nItems:
		return fmt.Errorf("genre matrix rows %d != items %d", s.Genres.Items(), nItems)
	}
	return nil
}

// Info returns the snapshot summary.
func (s *Snapshot) Info() SnapshotInfo {
	nUsers, nItems := s.Interactions.Shape()
	return SnapshotInfo{
		Fingerprint:  s.Fingerprint,
		LoadedAt:     s.LoadedAt,
		Source:       s.Source,
		Users:        nUsers,
		Items:        nItems,
		Genres:       len(s.Genres.Genres()),
		Movies:       s.Catalog.Len(),
		Factors:      s.Factors.Factors(),
		Interactions: s.Interactions.NNZ(),
	}
}
