// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads Reelmix configuration from built-in defaults, an
// optional YAML file and environment variables, in that order of priority.
//
// Both binaries share one Config. The API server reads every section except
// UI; cmd/ui reads UI and Logging.
package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Artifacts ArtifactsConfig `koanf:"artifacts"`
	Recommend RecommendConfig `koanf:"recommend"`
	Cache     CacheConfig     `koanf:"cache"`
	Search    SearchConfig    `koanf:"search"`
	Security  SecurityConfig  `koanf:"security"`
	UI        UIConfig        `koanf:"ui"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig configures the API HTTP listener.
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ArtifactsConfig locates the files exported by the training pipeline.
// Relative file paths are resolved against Dir.
type ArtifactsConfig struct {
	Dir          string `koanf:"dir"`
	Factors      string `koanf:"factors"`
	UserEncoder  string `koanf:"user_encoder"`
	MovieEncoder string `koanf:"movie_encoder"`
	Interactions string `koanf:"interactions"`
	Movies       string `koanf:"movies"`

	// Watch enables hot reload when any artifact file changes.
	Watch    bool          `koanf:"watch"`
	Debounce time.Duration `koanf:"debounce"`
}

// Resolve joins p with Dir unless p is already absolute.
func (a ArtifactsConfig) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.Dir, p)
}

// RecommendConfig holds request defaults and limits for the hybrid engine.
type RecommendConfig struct {
	DefaultK     int           `koanf:"default_k"`
	MaxK         int           `koanf:"max_k"`
	DefaultAlpha float64       `koanf:"default_alpha"`
	Order        string        `koanf:"order"` // movie_id or score
	Timeout      time.Duration `koanf:"timeout"`
}

// CacheConfig configures the response cache.
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Backend    string        `koanf:"backend"` // memory or badger
	TTL        time.Duration `koanf:"ttl"`
	MaxEntries int           `koanf:"max_entries"`
	// Path is the BadgerDB directory, required when Backend is badger.
	Path string `koanf:"path"`
}

// SearchConfig toggles the in-memory title index.
type SearchConfig struct {
	Enabled bool `koanf:"enabled"`
}

// SecurityConfig holds the HTTP hardening knobs.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// UIConfig configures the cmd/ui process.
type UIConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	APIURL  string        `koanf:"api_url"`
	Timeout time.Duration `koanf:"timeout"`
}

// Addr returns host:port for the UI listener.
func (u UIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", u.Host, u.Port)
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration with the following priority (highest wins):
//  1. Built-in defaults
//  2. Config file (CONFIG_PATH, or the first of DefaultConfigPaths that exists)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
