// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmix/internal/metrics"
	"github.com/tomtom215/reelmix/internal/recommend"
)

// ErrNoArtifactFiles is returned by Serve when there is nothing to watch.
var ErrNoArtifactFiles = errors.New("artifact watcher: no files configured")

// SnapshotLoader reads a fresh snapshot from disk.
type SnapshotLoader func(ctx context.Context) (*recommend.Snapshot, error)

// SnapshotSwapper installs snapshots. Satisfied by *recommend.Engine.
type SnapshotSwapper interface {
	Swap(snap *recommend.Snapshot) error
	Snapshot() *recommend.Snapshot
}

// ArtifactWatcherConfig configures an ArtifactWatcherService.
type ArtifactWatcherConfig struct {
	// Files are the artifact paths. Their parent directories are watched so
	// atomic rename-into-place writes are seen.
	Files []string

	// Debounce collapses bursts of events into one reload. Default: 2s
	Debounce time.Duration

	// LoadTimeout bounds one reload. Default: 5m
	LoadTimeout time.Duration
}

// ArtifactWatcherService reloads the model artifacts when they change on
// disk. A failed reload is logged and the engine keeps its snapshot.
type ArtifactWatcherService struct {
	load    SnapshotLoader
	engine  SnapshotSwapper
	config  ArtifactWatcherConfig
	files   map[string]struct{}
	logger  zerolog.Logger
	name    string
	mu      sync.Mutex
	reloads int
}

// NewArtifactWatcherService creates the watcher.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewArtifactWatcherService(load SnapshotLoader, engine SnapshotSwapper, cfg ArtifactWatcherConfig, logger zerolog.Logger) *ArtifactWatcherService {
	if cfg.Debounce <= 0 {
		cfg.Debounce = 2 * time.Second
	}
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = 5 * time.Minute
	}

	files := make(map[string]struct{}, len(cfg.Files))
	for _, f := range cfg.Files {
		files[cleanPath(f)] = struct{}{}
	}

	return &ArtifactWatcherService{
		load:   load,
		engine: engine,
		config: cfg,
		files:  files,
		logger: logger.With().Str("service", "artifact-watcher").Logger(),
		name:   "artifact-watcher",
	}
}

// Reload loads the artifacts and swaps them in unless the fingerprint is
// unchanged. It returns whether a swap happened.
func (s *ArtifactWatcherService) Reload(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.LoadTimeout)
	defer cancel()

	start := time.Now()
	snap, err := s.load(ctx)
	metrics.RecordArtifactLoad(time.Since(start), time.Now(), err)
	if err != nil {
		return false, fmt.Errorf("load artifacts: %w", err)
	}

	if cur := s.engine.Snapshot(); cur != nil && cur.Fingerprint == snap.Fingerprint {
		s.logger.Debug().Str("fingerprint", snap.Fingerprint).Msg("artifacts unchanged, skipping swap")
		return false, nil
	}

	if err := s.engine.Swap(snap); err != nil {
		return false, err
	}

	s.mu.Lock()
	s.reloads++
	s.mu.Unlock()

	s.logger.Info().
		Str("fingerprint", snap.Fingerprint).
		Dur("duration", time.Since(start)).
		Msg("artifacts reloaded")
	return true, nil
}

// Reloads returns the number of successful swaps done by this service.
func (s *ArtifactWatcherService) Reloads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloads
}

// Serve watches the artifact directories until ctx is canceled.
func (s *ArtifactWatcherService) Serve(ctx context.Context) error {
	if len(s.files) == 0 {
		return ErrNoArtifactFiles
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	dirs := make(map[string]struct{})
	for f := range s.files {
		dirs[filepath.Dir(f)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	s.logger.Info().
		Int("files", len(s.files)).
		Int("directories", len(dirs)).
		Dur("debounce", s.config.Debounce).
		Msg("artifact watcher started")

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("artifact watcher stopping")
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("artifact watcher: event channel closed")
			}
			if !s.relevant(event) {
				continue
			}
			s.logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("artifact changed")
			if timer == nil {
				timer = time.NewTimer(s.config.Debounce)
			} else {
				timer.Reset(s.config.Debounce)
			}
			pending = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("artifact watcher: error channel closed")
			}
			s.logger.Warn().Err(err).Msg("fsnotify error")

		case <-pending:
			pending = nil
			if _, err := s.Reload(ctx); err != nil {
				s.logger.Error().Err(err).Msg("artifact reload failed, keeping current snapshot")
			}
		}
	}
}

func (s *ArtifactWatcherService) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	_, ok := s.files[cleanPath(event.Name)]
	return ok
}

func (s *ArtifactWatcherService) String() string {
	return s.name
}

func cleanPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
