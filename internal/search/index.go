// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmix/internal/metrics"
	"github.com/tomtom215/reelmix/internal/recommend"
)

// ErrNotReady is returned by Search before the first Rebuild.
var ErrNotReady = errors.New("search index not built")

const batchSize = 500

// Index is a rebuildable in-memory movie index. Safe for concurrent use.
type Index struct {
	logger zerolog.Logger

	mu          sync.RWMutex
	index       bleve.Index
	catalog     *recommend.Catalog
	fingerprint string
}

// NewIndex returns an empty index. Search fails with ErrNotReady until
// Rebuild succeeds.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewIndex(logger zerolog.Logger) *Index {
	return &Index{
		logger: logger.With().Str("component", "search").Logger(),
	}
}

// Rebuild indexes every movie in catalog into a fresh index and replaces the
// current one. On error the current index is kept.
func (i *Index) Rebuild(fingerprint string, catalog *recommend.Catalog) error {
	start := time.Now()

	next, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	movies := catalog.Movies()
	for lo := 0; lo < len(movies); lo += batchSize {
		hi := min(lo+batchSize, len(movies))
		batch := next.NewBatch()
		for _, m := range movies[lo:hi] {
			if err := batch.Index(docID(m.ID), toDocument(m)); err != nil {
				_ = next.Close() //nolint:errcheck // discarding a half-built index
				return fmt.Errorf("batch index %d: %w", m.ID, err)
			}
		}
		if err := next.Batch(batch); err != nil {
			_ = next.Close() //nolint:errcheck // discarding a half-built index
			return fmt.Errorf("commit batch %d-%d: %w", lo, hi, err)
		}
	}

	i.mu.Lock()
	prev := i.index
	i.index = next
	i.catalog = catalog
	i.fingerprint = fingerprint
	i.mu.Unlock()

	if prev != nil {
		if err := prev.Close(); err != nil {
			i.logger.Warn().Err(err).Msg("failed to close previous search index")
		}
	}

	metrics.SearchIndexDocuments.Set(float64(len(movies)))
	i.logger.Info().
		Str("fingerprint", fingerprint).
		Int("documents", len(movies)).
		Dur("duration", time.Since(start)).
		Msg("search index rebuilt")
	return nil
}

// OnSwap rebuilds from snap. Its signature matches recommend.Engine.OnSwap.
func (i *Index) OnSwap(snap *recommend.Snapshot) {
	if err := i.Rebuild(snap.Fingerprint, snap.Catalog); err != nil {
		i.logger.Error().Err(err).Str("fingerprint", snap.Fingerprint).Msg("search index rebuild failed")
	}
}

// DocumentCount returns the number of indexed movies.
func (i *Index) DocumentCount() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.index == nil {
		return 0, ErrNotReady
	}
	return i.index.DocCount()
}

// Fingerprint returns the snapshot fingerprint of the current index.
func (i *Index) Fingerprint() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.fingerprint
}

// Close releases the current index.
func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.index == nil {
		return nil
	}
	err := i.index.Close()
	i.index = nil
	return err
}
