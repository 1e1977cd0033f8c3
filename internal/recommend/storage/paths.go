// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import "github.com/tomtom215/reelmix/internal/config"

// Paths holds resolved artifact file paths.
type Paths struct {
	// Dir is recorded as the snapshot source.
	Dir          string
	Factors      string
	UserEncoder  string
	MovieEncoder string
	Interactions string
	Movies       string
}

// PathsFromConfig resolves every artifact path against the artifacts directory.
func PathsFromConfig(a config.ArtifactsConfig) Paths { //nolint:gocritic // hugeParam: config passed by value
	return Paths{
		Dir:          a.Dir,
		Factors:      a.Resolve(a.Factors),
		UserEncoder:  a.Resolve(a.UserEncoder),
		MovieEncoder: a.Resolve(a.MovieEncoder),
		Interactions: a.Resolve(a.Interactions),
		Movies:       a.Resolve(a.Movies),
	}
}

// Files returns the artifact paths in fingerprint order.
func (p Paths) Files() []string {
	return []string{p.Factors, p.UserEncoder, p.MovieEncoder, p.Interactions, p.Movies}
}
