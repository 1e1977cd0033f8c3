// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tomtom215/reelmix/internal/cache"
	"github.com/tomtom215/reelmix/internal/recommend"
)

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks all configuration sections and returns the first error.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateArtifacts,
		c.validateRecommend,
		c.validateCache,
		c.validateRateLimits,
		c.validateUI,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateArtifacts() error {
	a := c.Artifacts
	if a.Dir == "" {
		return fmt.Errorf("ARTIFACTS_DIR is required")
	}
	files := map[string]string{
		"factors":       a.Factors,
		"user_encoder":  a.UserEncoder,
		"movie_encoder": a.MovieEncoder,
		"interactions":  a.Interactions,
		"movies":        a.Movies,
	}
	for name, p := range files {
		if p == "" {
			return fmt.Errorf("artifacts.%s must not be empty", name)
		}
	}
	if a.Watch && a.Debounce < 0 {
		return fmt.Errorf("ARTIFACTS_DEBOUNCE must not be negative")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MaxK < 1 {
		return fmt.Errorf("RECOMMEND_MAX_K must be at least 1")
	}
	if r.DefaultK < 1 || r.DefaultK > r.MaxK {
		return fmt.Errorf("RECOMMEND_DEFAULT_K must be between 1 and RECOMMEND_MAX_K (%d)", r.MaxK)
	}
	if r.DefaultAlpha < 0 || r.DefaultAlpha > 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_ALPHA must be between 0 and 1")
	}
	if r.Order != recommend.OrderMovieID && r.Order != recommend.OrderScore {
		return fmt.Errorf("RECOMMEND_ORDER must be one of: %s, %s", recommend.OrderMovieID, recommend.OrderScore)
	}
	if r.Timeout <= 0 {
		return fmt.Errorf("RECOMMEND_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateCache() error {
	if !c.Cache.Enabled {
		return nil
	}
	switch c.Cache.Backend {
	case cache.BackendMemory:
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("CACHE_MAX_ENTRIES must be at least 1")
		}
	case cache.BackendBadger:
		if c.Cache.Path == "" {
			return fmt.Errorf("CACHE_PATH is required when CACHE_BACKEND=badger")
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be one of: %s, %s", cache.BackendMemory, cache.BackendBadger)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	return nil
}

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateUI() error {
	if c.UI.Port < 1 || c.UI.Port > 65535 {
		return fmt.Errorf("UI_PORT must be between 1 and 65535")
	}
	if c.UI.Timeout <= 0 {
		return fmt.Errorf("UI_TIMEOUT must be positive")
	}
	return validateHTTPURL(c.UI.APIURL, "UI_API_URL")
}

func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if !validLogFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateHTTPURL requires an http(s) scheme, a host, and no query string.
func validateHTTPURL(rawURL, fieldName string) error {
	if rawURL == "" {
		return errors.New(fieldName + " is required")
	}
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}
	return nil
}
