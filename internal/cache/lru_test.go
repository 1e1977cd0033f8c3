// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/reelmix/internal/metrics"
)

func TestLRUCache_BasicOperations(t *testing.T) {
	c := NewLRUCache(3, time.Minute)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))

	if v, found := c.Get("a"); !found || string(v) != "1" {
		t.Errorf("Get(a) = %q, %v", v, found)
	}
	if _, found := c.Get("missing"); found {
		t.Error("Get(missing) should miss")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	hits, misses, size := c.Stats()
	if hits != 1 || misses != 1 || size != 2 {
		t.Errorf("Stats() = %d/%d/%d, want 1/1/2", hits, misses, size)
	}
}

func TestLRUCache_Eviction(t *testing.T) {
	c := NewLRUCache(3, time.Minute)

	c.Set("a", nil)
	c.Set("b", nil)
	c.Set("c", nil)

	// touch a so b becomes least recently used
	c.Get("a")
	c.Set("d", nil)

	if _, found := c.Get("b"); found {
		t.Error("Expected 'b' to be evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, found := c.Get(k); !found {
			t.Errorf("Expected %q to be present", k)
		}
	}
}

func TestLRUCache_UpdateRefreshes(t *testing.T) {
	c := NewLRUCache(2, time.Minute)

	c.Set("a", []byte("old"))
	c.Set("b", nil)
	c.Set("a", []byte("new"))
	c.Set("c", nil) // evicts b, not a

	if v, found := c.Get("a"); !found || string(v) != "new" {
		t.Errorf("Get(a) = %q, %v; want new, true", v, found)
	}
	if _, found := c.Get("b"); found {
		t.Error("Expected 'b' to be evicted")
	}
}

func TestLRUCache_TTL(t *testing.T) {
	c := NewLRUCache(10, time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("k", []byte("v"))
	now = now.Add(30 * time.Second)
	if _, found := c.Get("k"); !found {
		t.Fatal("entry expired too early")
	}

	now = now.Add(31 * time.Second)
	if _, found := c.Get("k"); found {
		t.Error("entry should have expired")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry not removed, Len() = %d", c.Len())
	}
}

func TestLRUCache_RemoveAndPurge(t *testing.T) {
	c := NewLRUCache(10, time.Minute)
	c.Set("a", nil)
	c.Set("b", nil)

	if !c.Remove("a") {
		t.Error("Remove(a) = false, want true")
	}
	if c.Remove("a") {
		t.Error("second Remove(a) = true, want false")
	}

	if err := c.Purge(); err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() after Purge = %d", c.Len())
	}
	c.Set("c", nil)
	if _, found := c.Get("c"); !found {
		t.Error("cache unusable after Purge")
	}
}

func TestLRUCache_SizeGaugeTracksRemovals(t *testing.T) {
	gauge := metrics.CacheSize.WithLabelValues(BackendMemory)
	c := NewLRUCache(10, time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("a", nil)
	c.Set("b", nil)
	c.Set("c", nil)
	if got := testutil.ToFloat64(gauge); got != 3 {
		t.Fatalf("size gauge after Set = %v, want 3", got)
	}

	c.Remove("a")
	if got := testutil.ToFloat64(gauge); got != 2 {
		t.Errorf("size gauge after Remove = %v, want 2", got)
	}

	now = now.Add(30 * time.Second)
	c.Set("d", nil)
	now = now.Add(45 * time.Second)
	if _, found := c.Get("b"); found {
		t.Fatal("b should have expired")
	}
	if got := testutil.ToFloat64(gauge); got != 2 {
		t.Errorf("size gauge after lazy expiry = %v, want 2", got)
	}

	if err := c.Purge(); err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if got := testutil.ToFloat64(gauge); got != 0 {
		t.Errorf("size gauge after Purge = %v, want 0", got)
	}
}

func TestLRUCache_Defaults(t *testing.T) {
	c := NewLRUCache(0, 0)
	if c.capacity != 10000 {
		t.Errorf("capacity = %d, want 10000", c.capacity)
	}
	if c.ttl != 5*time.Minute {
		t.Errorf("ttl = %v, want 5m", c.ttl)
	}
	if c.Name() != BackendMemory {
		t.Errorf("Name() = %q", c.Name())
	}
}

func TestLRUCache_Concurrent(t *testing.T) {
	c := NewLRUCache(100, time.Minute)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := fmt.Sprintf("k%d", (g*500+i)%150)
				c.Set(key, []byte(key))
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 100 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}
