// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package recommend

import "errors"

var (
	// ErrUnknownUser is returned when the raw user ID is not in the user encoder.
	ErrUnknownUser = errors.New("unknown user_id")

	// ErrNotReady is returned when no snapshot has been loaded yet.
	ErrNotReady = errors.New("recommender not ready: no artifacts loaded")

	// ErrInvalidRequest is returned for out-of-range k or alpha.
	ErrInvalidRequest = errors.New("invalid recommendation request")
)
