// Package cache provides a TTL-bounded quote cache sitting in front of
// bridge adapter network calls, so repeated intake requests for the same
// (bridge, pair) within a short window don't re-hit the remote quote API.
package cache

import (
	"sync"
	"time"

	expirable "github.com/hashicorp/golang-lru/v2/expirable"
	"polypath/core"
)

// QuoteCache caches core.BridgeEdge quotes keyed by an opaque string (the
// caller composes the key, typically bridge name + chain pair + token pair).
// It wraps a hashicorp/golang-lru/v2 expirable LRU, which already evicts
// entries once their TTL has passed, plus simple hit/miss counters.
type QuoteCache struct {
	lru   *expirable.LRU[string, core.BridgeEdge]
	stats stats
}

type stats struct {
	mu     sync.Mutex
	hits   int64
	misses int64
}

// Stats is a point-in-time snapshot of cache performance.
type Stats struct {
	Hits   int64
	Misses int64
	Size   int
}

// New constructs a QuoteCache holding at most size entries, each expiring
// ttl after being Set. A zero or negative size falls back to 1024 entries;
// ttl <= 0 disables expiry (entries live until evicted by capacity).
func New(size int, ttl time.Duration) *QuoteCache {
	if size <= 0 {
		size = 1024
	}
	return &QuoteCache{lru: expirable.NewLRU[string, core.BridgeEdge](size, nil, ttl)}
}

// Get returns the cached BridgeEdge for key, if present and unexpired.
func (c *QuoteCache) Get(key string) (core.BridgeEdge, bool) {
	v, ok := c.lru.Get(key)
	c.stats.mu.Lock()
	if ok {
		c.stats.hits++
	} else {
		c.stats.misses++
	}
	c.stats.mu.Unlock()
	return v, ok
}

// Set stores value under key, superseding any existing entry and resetting
// its TTL clock.
func (c *QuoteCache) Set(key string, value core.BridgeEdge) {
	c.lru.Add(key, value)
}

// Purge drops every cached entry.
func (c *QuoteCache) Purge() {
	c.lru.Purge()
}

// Snapshot returns the cache's current hit/miss/size statistics.
func (c *QuoteCache) Snapshot() Stats {
	c.stats.mu.Lock()
	defer c.stats.mu.Unlock()
	return Stats{Hits: c.stats.hits, Misses: c.stats.misses, Size: c.lru.Len()}
}
