// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/recommend", "200"))
	RecordAPIRequest("POST", "/recommend", "200", 5*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/recommend", "200"))

	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active after dec = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		name    string
		outcome string
	}{
		{"scored", "ok"},
		{"cached", "cache_hit"},
		{"unknown user", "unknown_user"},
		{"failure", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(RecommendRequestsTotal.WithLabelValues(tt.outcome))
			RecordRecommendation(tt.outcome, time.Millisecond, 10)
			after := testutil.ToFloat64(RecommendRequestsTotal.WithLabelValues(tt.outcome))
			if after-before != 1 {
				t.Errorf("outcome %q delta = %v, want 1", tt.outcome, after-before)
			}
		})
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("memory"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("memory"))

	RecordCacheLookup("memory", true)
	RecordCacheLookup("memory", false)
	RecordCacheLookup("memory", false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("memory")) - hits; got != 1 {
		t.Errorf("hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("memory")) - misses; got != 2 {
		t.Errorf("misses delta = %v, want 2", got)
	}
}

func TestRecordArtifactLoad(t *testing.T) {
	loadedAt := time.Unix(1_700_000_000, 0)
	failures := testutil.ToFloat64(ArtifactLoadsTotal.WithLabelValues("failure"))

	RecordArtifactLoad(time.Second, loadedAt, nil)
	if got := testutil.ToFloat64(ArtifactLastLoadTimestamp); got != 1_700_000_000 {
		t.Errorf("last load timestamp = %v", got)
	}

	RecordArtifactLoad(time.Second, time.Unix(1_800_000_000, 0), errors.New("bad indptr"))
	if got := testutil.ToFloat64(ArtifactLastLoadTimestamp); got != 1_700_000_000 {
		t.Errorf("failed load moved timestamp to %v", got)
	}
	if got := testutil.ToFloat64(ArtifactLoadsTotal.WithLabelValues("failure")) - failures; got != 1 {
		t.Errorf("failure delta = %v, want 1", got)
	}
}

func TestUpdateSnapshotSize(t *testing.T) {
	UpdateSnapshotSize(6040, 3706, 18, 3883, 64)

	want := map[string]float64{"users": 6040, "items": 3706, "genres": 18, "movies": 3883, "factors": 64}
	for dim, v := range want {
		if got := testutil.ToFloat64(SnapshotSize.WithLabelValues(dim)); got != v {
			t.Errorf("snapshot %s = %v, want %v", dim, got, v)
		}
	}
}

// TestMetricGathering tests that metrics can be gathered using testutil
func TestMetricGathering(t *testing.T) {
	RecordAPIRequest("GET", "/", "200", time.Millisecond)
	RecordClientCall("success")

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}
