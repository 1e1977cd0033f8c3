// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/reelmix/internal/client"
)

type fakeAPI struct {
	resp  *client.Response
	err   error
	calls int
	last  struct {
		userID int
		k      int
		alpha  float64
	}
}

func (f *fakeAPI) Recommend(_ context.Context, userID, k int, alpha float64) (*client.Response, error) {
	f.calls++
	f.last.userID, f.last.k, f.last.alpha = userID, k, alpha
	return f.resp, f.err
}

func newTestServer(t *testing.T, api Recommender) *httptest.Server {
	t.Helper()
	h, err := NewHandler(api, time.Second)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	srv := httptest.NewServer(NewRouter(h))
	t.Cleanup(srv.Close)
	return srv
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func TestIndex_RendersDefaults(t *testing.T) {
	srv := newTestServer(t, &fakeAPI{})

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	for _, want := range []string{
		`name="user_id" min="0"`,
		`name="k" min="5" max="20" step="1" value="10"`,
		`name="alpha" min="0" max="1" step="0.05" value="0.70"`,
		"Get Recommendations",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, "API error") {
		t.Error("unexpected error banner on GET")
	}
}

func TestSubmit_RendersNumberedList(t *testing.T) {
	api := &fakeAPI{resp: &client.Response{
		UserID: 3,
		Recommendations: []client.Recommendation{
			{MovieID: 1, Title: "Toy Story (1995)", Genres: []string{"Animation", "Children's", "Comedy"}},
			{MovieID: 2, Title: "Jumanji (1995)", Genres: []string{"Adventure"}},
		},
	}}
	srv := newTestServer(t, api)

	resp, err := http.PostForm(srv.URL+"/", url.Values{"user_id": {"3"}, "k": {"12"}, "alpha": {"0.25"}})
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if api.last.userID != 3 || api.last.k != 12 || api.last.alpha != 0.25 {
		t.Errorf("api called with %+v", api.last)
	}
	if !strings.Contains(body, "<ol>") {
		t.Error("expected an ordered list")
	}
	if !strings.Contains(body, "(Animation, Children&#39;s, Comedy)") {
		t.Errorf("genres not joined:\n%s", body)
	}
	first := strings.Index(body, "Toy Story (1995)")
	second := strings.Index(body, "Jumanji (1995)")
	if first < 0 || second < 0 || first > second {
		t.Errorf("titles missing or out of order")
	}
}

func TestSubmit_APIErrorBanner(t *testing.T) {
	api := &fakeAPI{err: &client.APIError{StatusCode: http.StatusNotFound, Body: "User ID not found"}}
	srv := newTestServer(t, api)

	resp, err := http.PostForm(srv.URL+"/", url.Values{"user_id": {"99999"}, "k": {"10"}, "alpha": {"0.7"}})
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, resp)

	if !strings.Contains(body, "API error") || !strings.Contains(body, "User ID not found") {
		t.Errorf("banner missing:\n%s", body)
	}
	if strings.Contains(body, "<ol>") {
		t.Error("no list expected on error")
	}
}

func TestSubmit_TransportError(t *testing.T) {
	srv := newTestServer(t, &fakeAPI{err: errors.New("connection refused")})

	resp, err := http.PostForm(srv.URL+"/", url.Values{"user_id": {"1"}})
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, resp)
	if !strings.Contains(body, "connection refused") {
		t.Errorf("expected transport error text:\n%s", body)
	}
}

func TestSubmit_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{"missing user", url.Values{"k": {"10"}}},
		{"negative user", url.Values{"user_id": {"-1"}}},
		{"non numeric user", url.Values{"user_id": {"abc"}}},
		{"k too small", url.Values{"user_id": {"1"}, "k": {"4"}}},
		{"k too large", url.Values{"user_id": {"1"}, "k": {"21"}}},
		{"alpha above one", url.Values{"user_id": {"1"}, "alpha": {"1.5"}}},
		{"alpha not a number", url.Values{"user_id": {"1"}, "alpha": {"x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			srv := newTestServer(t, api)

			resp, err := http.PostForm(srv.URL+"/", tt.form)
			if err != nil {
				t.Fatal(err)
			}
			body := readBody(t, resp)

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			if !strings.Contains(body, "Invalid input") {
				t.Error("expected validation banner")
			}
			if api.calls != 0 {
				t.Errorf("api calls = %d, want 0", api.calls)
			}
		})
	}
}

func TestSubmit_DefaultsWhenOmitted(t *testing.T) {
	api := &fakeAPI{resp: &client.Response{UserID: 0}}
	srv := newTestServer(t, api)

	resp, err := http.PostForm(srv.URL+"/", url.Values{"user_id": {"0"}})
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, resp)

	if api.last.k != DefaultK || api.last.alpha != DefaultAlpha {
		t.Errorf("api called with k=%d alpha=%v", api.last.k, api.last.alpha)
	}
	if !strings.Contains(body, "No recommendations available.") {
		t.Error("expected empty-result message")
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &fakeAPI{})
	resp, err := http.Get(srv.URL + "/health/live")
	if err != nil {
		t.Fatal(err)
	}
	if body := readBody(t, resp); resp.StatusCode != http.StatusOK || body != "ok" {
		t.Errorf("status = %d body = %q", resp.StatusCode, body)
	}
}
