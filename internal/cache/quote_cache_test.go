package cache

import (
	"testing"
	"time"

	"polypath/core"
)

func TestQuoteCacheSetGet(t *testing.T) {
	c := New(10, time.Minute)
	edge := core.BridgeEdge{From: "a", To: "b", Cost: 1}

	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected miss before Set")
	}
	c.Set("k", edge)
	got, ok := c.Get("k")
	if !ok || got != edge {
		t.Fatalf("expected hit returning %+v, got %+v ok=%v", edge, got, ok)
	}

	snap := c.Snapshot()
	if snap.Hits != 1 || snap.Misses != 1 || snap.Size != 1 {
		t.Fatalf("unexpected stats: %+v", snap)
	}
}

func TestQuoteCacheExpiry(t *testing.T) {
	c := New(10, 10*time.Millisecond)
	c.Set("k", core.BridgeEdge{Cost: 1})
	time.Sleep(50 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected entry to have expired")
	}
}

func TestQuoteCachePurge(t *testing.T) {
	c := New(10, time.Minute)
	c.Set("k", core.BridgeEdge{Cost: 1})
	c.Purge()
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected purge to clear entries")
	}
}
