// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package ui serves the HTML front end for the recommendation API.

The UI is a single form (user ID, number of recommendations, alpha). A
submit posts to the API through internal/client and renders the returned
titles as a numbered list. Any non-200 reply is shown as an "API error"
banner carrying the response text.

The page template is embedded in the binary.
*/
package ui
