package token

import (
	"math/rand"
	"testing"
)

func TestCacheInsertLookupRoundTrip(t *testing.T) {
	c := newCache()
	want := map[int]result{
		0:   {found: true, baseIndex: 0, end: 3},
		5:   {found: false},
		100: {found: true, baseIndex: 2, end: 120},
	}
	for pos, res := range want {
		c.insert(pos, res)
	}
	for pos, res := range want {
		got, hit := c.lookup(pos)
		if !hit {
			t.Fatalf("expected hit at %d", pos)
		}
		if got.found != res.found || got.baseIndex != res.baseIndex || got.end != res.end {
			t.Fatalf("pos %d: got %+v, want %+v", pos, got, res)
		}
	}
	if _, hit := c.lookup(999); hit {
		t.Fatalf("expected no entry at 999")
	}
}

func TestCacheSurvivesGrowth(t *testing.T) {
	c := newCache()
	rng := rand.New(rand.NewSource(42))

	// Insert enough random positions to cross the 0.8 load-factor
	// threshold (and then some), and verify every lookup still
	// returns exactly what was inserted.
	const n = 5000
	positions := make([]int, 0, n)
	seen := make(map[int]bool, n)
	for len(positions) < n {
		p := rng.Intn(1_000_000)
		if seen[p] {
			continue
		}
		seen[p] = true
		positions = append(positions, p)
	}

	for i, p := range positions {
		c.insert(p, result{found: i%3 != 0, baseIndex: i % 7, end: p + i%11})
	}

	for i, p := range positions {
		got, hit := c.lookup(p)
		if !hit {
			t.Fatalf("missing position %d after growth", p)
		}
		want := result{found: i%3 != 0, baseIndex: i % 7, end: p + i%11}
		if got.found != want.found || got.baseIndex != want.baseIndex || got.end != want.end {
			t.Fatalf("pos %d: got %+v, want %+v", p, got, want)
		}
	}
	if len(c.control) <= initialCapacity {
		t.Fatalf("expected table to have grown past initial capacity, got %d", len(c.control))
	}
}

func TestCacheOverwriteExistingPosition(t *testing.T) {
	c := newCache()
	c.insert(7, result{found: true, baseIndex: 0, end: 1})
	c.insert(7, result{found: true, baseIndex: 1, end: 9})
	got, hit := c.lookup(7)
	if !hit || got.baseIndex != 1 || got.end != 9 {
		t.Fatalf("expected overwrite to stick, got %+v", got)
	}
}

func TestCacheReset(t *testing.T) {
	c := newCache()
	c.insert(1, result{found: true, baseIndex: 0, end: 2})
	c.reset()
	if _, hit := c.lookup(1); hit {
		t.Fatalf("expected reset to empty the cache")
	}
	if len(c.control) != initialCapacity {
		t.Fatalf("expected reset to restore initial capacity")
	}
}
