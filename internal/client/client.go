// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// maxBodyBytes caps how much of a reply is read.
const maxBodyBytes = 1 << 20

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration

	// RPS and Burst bound outgoing calls. RPS <= 0 disables limiting.
	RPS   float64
	Burst int

	// BreakerName labels the circuit breaker metric.
	BreakerName string

	HTTPClient *http.Client
}

// DefaultOptions returns options for a local API.
func DefaultOptions() Options {
	return Options{
		BaseURL:     "http://localhost:8000",
		Timeout:     10 * time.Second,
		RPS:         20,
		Burst:       40,
		BreakerName: "recommend-api",
	}
}

// Recommendation is one movie in a Response.
type Recommendation struct {
	MovieID int      `json:"movie_id"`
	Title   string   `json:"title"`
	Genres  []string `json:"genres"`
}

// Response is the decoded POST /recommend reply.
type Response struct {
	UserID          int              `json:"user_id"`
	Recommendations []Recommendation `json:"recommendations"`
}

type request struct {
	UserID int     `json:"user_id"`
	K      int     `json:"k"`
	Alpha  float64 `json:"alpha"`
}

// APIError is returned for any non-200 reply.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned %d: %s", e.StatusCode, e.Body)
}

// Client calls the recommendation API.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	breaker *breaker
}

// New builds a Client. BaseURL is required.
func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, errors.New("client: base URL is required")
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return nil, fmt.Errorf("client: base URL %q must start with http:// or https://", base)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultOptions().Timeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if opts.RPS > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RPS), burst)
	}

	name := opts.BreakerName
	if name == "" {
		name = DefaultOptions().BreakerName
	}

	return &Client{
		baseURL: base,
		http:    hc,
		limiter: limiter,
		breaker: newBreaker(name),
	}, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Recommend posts to /recommend.
func (c *Client) Recommend(ctx context.Context, userID, k int, alpha float64) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	return execute(c.breaker, func() (*Response, error) {
		return c.doRecommend(ctx, request{UserID: userID, K: k, Alpha: alpha})
	})
}

func (c *Client) doRecommend(ctx context.Context, body request) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recommend", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}
