// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmix/internal/logging"
)

// SlowRequestThreshold is the latency above which a request is logged at warn.
var SlowRequestThreshold = time.Second

// AccessLog writes one structured line per request. Requests slower than
// SlowRequestThreshold are logged at warn level, everything else at debug.
func AccessLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := newStatusRecorder(w)

		next(wrapper, r)

		duration := time.Since(start)
		event := logging.Ctx(r.Context()).Debug()
		if duration > SlowRequestThreshold {
			event = logging.Ctx(r.Context()).Warn().Bool("slow", true)
		} else if wrapper.statusCode >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapper.statusCode).
			Int("bytes", wrapper.bytes).
			Int64("duration_ms", duration.Milliseconds()).
			Msg("http request")
	}
}
