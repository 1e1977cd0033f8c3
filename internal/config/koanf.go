// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/reelmix/internal/cache"
	"github.com/tomtom215/reelmix/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/reelmix/config.yaml",
	"/etc/reelmix/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with every default applied.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    8000,
			Host:    "0.0.0.0",
			Timeout: 30 * time.Second,
		},
		Artifacts: ArtifactsConfig{
			Dir:          ".",
			Factors:      "models/als_factors.json",
			UserEncoder:  "models/user_encoder.json",
			MovieEncoder: "models/movie_encoder.json",
			Interactions: "data/processed/item_user_train.json",
			Movies:       "data/raw/movies.dat",
			Watch:        false,
			Debounce:     2 * time.Second,
		},
		Recommend: RecommendConfig{
			DefaultK:     10,
			MaxK:         100,
			DefaultAlpha: 0.7,
			Order:        recommend.OrderMovieID,
			Timeout:      10 * time.Second,
		},
		Cache: CacheConfig{
			Enabled:    true,
			Backend:    cache.BackendMemory,
			TTL:        5 * time.Minute,
			MaxEntries: 10000,
			Path:       "/data/reelmix/cache",
		},
		Search: SearchConfig{
			Enabled: true,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		UI: UIConfig{
			Port:    8501,
			Host:    "0.0.0.0",
			APIURL:  "http://localhost:8000",
			Timeout: 15 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf with layered sources.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// ARTIFACTS_DIR -> artifacts.dir
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns CONFIG_PATH when it exists, otherwise the first
// existing entry of DefaultConfigPaths, otherwise "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated env values into slices.
// Values that are already slices (from YAML) are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",

	// Artifacts
	"artifacts_dir":           "artifacts.dir",
	"artifacts_factors":       "artifacts.factors",
	"artifacts_user_encoder":  "artifacts.user_encoder",
	"artifacts_movie_encoder": "artifacts.movie_encoder",
	"artifacts_interactions":  "artifacts.interactions",
	"artifacts_movies":        "artifacts.movies",
	"artifacts_watch":         "artifacts.watch",
	"artifacts_debounce":      "artifacts.debounce",

	// Recommendation engine
	"recommend_default_k":     "recommend.default_k",
	"recommend_max_k":         "recommend.max_k",
	"recommend_default_alpha": "recommend.default_alpha",
	"recommend_order":         "recommend.order",
	"recommend_timeout":       "recommend.timeout",

	// Cache
	"cache_enabled":     "cache.enabled",
	"cache_backend":     "cache.backend",
	"cache_ttl":         "cache.ttl",
	"cache_max_entries": "cache.max_entries",
	"cache_path":        "cache.path",

	"search_enabled": "search.enabled",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// UI process
	"ui_port":    "ui.port",
	"ui_host":    "ui.host",
	"ui_api_url": "ui.api_url",
	"ui_timeout": "ui.timeout",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped keys return "" so unrelated environment variables never pollute config.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
