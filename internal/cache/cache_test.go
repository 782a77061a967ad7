// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	t.Parallel()
	c := New(time.Minute)

	c.Set("stats:category", []int{1, 2, 3})
	got, ok := c.Get("stats:category")
	if !ok {
		t.Fatal("Get() miss, want hit")
	}
	if vals, ok := got.([]int); !ok || len(vals) != 3 {
		t.Errorf("Get() = %v, want original slice", got)
	}

	if _, ok := c.Get("nope"); ok {
		t.Error("Get() hit on unknown key")
	}
}

func TestCacheExpiry(t *testing.T) {
	t.Parallel()
	c := New(time.Minute)

	c.SetWithTTL("short", "value", 10*time.Millisecond)
	if _, ok := c.Get("short"); !ok {
		t.Fatal("entry expired immediately")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("short"); ok {
		t.Error("entry survived its TTL")
	}
}

func TestCacheOverwrite(t *testing.T) {
	t.Parallel()
	c := New(time.Minute)

	c.Set("key", "first")
	c.Set("key", "second")
	got, ok := c.Get("key")
	if !ok || got != "second" {
		t.Errorf("Get() = %v, want second", got)
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	t.Parallel()
	c := New(time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("deleted entry still present")
	}
	c.Delete("never-existed") // must not panic

	c.Clear()
	if _, ok := c.Get("b"); ok {
		t.Error("entry survived Clear()")
	}
}

func TestCacheStats(t *testing.T) {
	t.Parallel()
	c := New(time.Minute)

	c.Set("key", "value")
	c.Get("key")  // hit
	c.Get("miss") // miss

	stats := c.GetStats()
	if stats.Hits != 1 {
		t.Errorf("Hits = %d, want 1", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
	if rate := c.HitRate(); rate != 50.0 {
		t.Errorf("HitRate() = %f, want 50.0", rate)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	t.Parallel()
	c := New(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%3)
			for j := 0; j < 100; j++ {
				c.Set(key, j)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()
	type params struct {
		By   string
		City string
	}

	a := GenerateKey("stats", params{By: "category", City: "Tulsa"})
	b := GenerateKey("stats", params{By: "category", City: "Tulsa"})
	if a != b {
		t.Errorf("same params produced different keys: %q vs %q", a, b)
	}

	other := GenerateKey("stats", params{By: "month", City: "Tulsa"})
	if a == other {
		t.Error("different params produced the same key")
	}

	otherEndpoint := GenerateKey("heatmap", params{By: "category", City: "Tulsa"})
	if a == otherEndpoint {
		t.Error("different endpoints produced the same key")
	}
}
