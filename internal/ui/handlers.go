// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/reelmix/internal/client"
	"github.com/tomtom215/reelmix/internal/logging"
	"github.com/tomtom215/reelmix/internal/validation"
)

// Form bounds and defaults.
const (
	MinK         = 5
	MaxK         = 20
	DefaultK     = 10
	DefaultAlpha = 0.7
)

//go:embed templates/index.html
var templateFS embed.FS

// Recommender is the subset of *client.Client the UI needs.
type Recommender interface {
	Recommend(ctx context.Context, userID, k int, alpha float64) (*client.Response, error)
}

// Form holds the submitted values.
type Form struct {
	UserID int     `form:"user_id" validate:"gte=0"`
	K      int     `form:"k" validate:"gte=5,lte=20"`
	Alpha  float64 `form:"alpha" validate:"gte=0,lte=1"`
}

type result struct {
	Title  string
	Genres []string
}

type page struct {
	Form      Form
	MinK      int
	MaxK      int
	Errors    []string
	APIError  string
	Submitted bool
	UserID    int
	Results   []result
}

// Handler renders the form and proxies submissions to the API.
type Handler struct {
	api     Recommender
	tmpl    *template.Template
	timeout time.Duration
}

// NewHandler parses the embedded template.
func NewHandler(api Recommender, timeout time.Duration) (*Handler, error) {
	tmpl, err := template.New("index.html").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &Handler{api: api, tmpl: tmpl, timeout: timeout}, nil
}

func newPage() page {
	return page{
		Form: Form{K: DefaultK, Alpha: DefaultAlpha},
		MinK: MinK,
		MaxK: MaxK,
	}
}

// Index handles GET /.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, newPage())
}

// Submit handles POST /.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	p := newPage()

	form, errs := parseForm(r)
	p.Form = form
	if len(errs) > 0 {
		p.Errors = errs
		h.render(w, r, http.StatusBadRequest, p)
		return
	}
	if verr := validation.ValidateStruct(&form); verr != nil {
		for _, fe := range verr.Errors() {
			p.Errors = append(p.Errors, fe.Error())
		}
		h.render(w, r, http.StatusBadRequest, p)
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	p.Submitted = true
	p.UserID = form.UserID

	resp, err := h.api.Recommend(ctx, form.UserID, form.K, form.Alpha)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			p.APIError = apiErr.Body
		} else {
			p.APIError = err.Error()
		}
		logging.Ctx(r.Context()).Warn().Err(err).Int("user_id", form.UserID).Msg("recommendation call failed")
		h.render(w, r, http.StatusOK, p)
		return
	}

	p.UserID = resp.UserID
	p.Results = make([]result, 0, len(resp.Recommendations))
	for _, rec := range resp.Recommendations {
		p.Results = append(p.Results, result{Title: rec.Title, Genres: rec.Genres})
	}
	h.render(w, r, http.StatusOK, p)
}

// Health handles GET /health/live.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// parseForm reads the posted values. Missing fields fall back to defaults.
func parseForm(r *http.Request) (Form, []string) {
	form := Form{K: DefaultK, Alpha: DefaultAlpha}
	if err := r.ParseForm(); err != nil {
		return form, []string{"could not read form"}
	}

	var errs []string
	if v := strings.TrimSpace(r.PostFormValue("user_id")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, "user_id must be a whole number")
		} else {
			form.UserID = n
		}
	} else {
		errs = append(errs, "user_id is required")
	}
	if v := strings.TrimSpace(r.PostFormValue("k")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, "k must be a whole number")
		} else {
			form.K = n
		}
	}
	if v := strings.TrimSpace(r.PostFormValue("alpha")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, "alpha must be a number")
		} else {
			form.Alpha = f
		}
	}
	return form, errs
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, p page) {
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, p); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to render page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
