// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cache provides the response cache used by the recommendation engine.
//
// Two backends implement Store:
//   - memory: a bounded LRU with TTL, lost on restart
//   - badger: a BadgerDB directory with native per-key TTL, survives restarts
//
// Values are opaque bytes; callers encode them (the engine stores JSON).
// Keys carry the artifact fingerprint, so a reload naturally misses, and
// Purge drops everything when the snapshot is swapped.
package cache

import (
	"fmt"
	"time"
)

// Store is a byte-valued TTL cache.
type Store interface {
	// Get returns the value and true when the key is present and not expired.
	Get(key string) ([]byte, bool)

	// Set stores value under key with the store's TTL.
	Set(key string, value []byte)

	// Purge removes every entry.
	Purge() error

	// Len returns the number of live entries.
	Len() int

	// Name is the backend label used in metrics ("memory", "badger").
	Name() string

	// Close releases resources held by the backend.
	Close() error
}

// Backend names accepted by New.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
)

// Options configures New.
type Options struct {
	Backend    string
	TTL        time.Duration
	MaxEntries int    // memory only
	Path       string // badger only
}

// New creates a Store for the configured backend.
func New(opts Options) (Store, error) {
	switch opts.Backend {
	case BackendMemory, "":
		return NewLRUCache(opts.MaxEntries, opts.TTL), nil
	case BackendBadger:
		return NewBadgerCache(opts.Path, opts.TTL)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}
