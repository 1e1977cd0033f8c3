// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package client is the HTTP client the web UI uses to reach the
recommendation API.

Calls go through a token bucket limiter and a circuit breaker. The breaker
counts transport failures and 5xx replies; a 4xx reply (for example an
unknown user) is the caller's problem and does not trip it.

Non-200 replies come back as *APIError carrying the status code and the raw
response text so the UI can show it verbatim.
*/
package client
