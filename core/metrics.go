package core

import (
	"sync/atomic"
	"time"
)

// EdgeMetrics is the public, floating-point view of an edge's live quote
// data. cost/risk are domain-units of fees / badness, speed is estimated
// end-to-end latency in seconds, liquidity is available depth.
type EdgeMetrics struct {
	Cost      float64
	Speed     float64
	Liquidity float64
	Risk      float64
}

// Fixed-point scaling factors used internally by EdgeMetricsCell so the four
// scalars can live in atomic.Uint64 cells instead of behind a mutex. These
// factors are an implementation detail and must never leak through the
// public API (get/set always take/return float64 EdgeMetrics).
const (
	costRiskScale  = 1_000_000.0
	speedScale     = 1_000.0
	liquidityScale = 1.0
)

// EdgeMetricsCell is a lock-free concurrent cell holding one edge's metrics.
// Each field is an independent atomic.Uint64, written with release ordering
// and read with acquire ordering (the Go memory model gives atomic loads and
// stores exactly that ordering). Because the four fields are stored
// independently, a reader racing an update may observe a torn snapshot —
// some fields from the old update, some from the new one. That is an
// accepted tradeoff (see spec's concurrency model): weights are advisory
// for routing, and the scoring pipeline normalizes across a batch anyway.
type EdgeMetricsCell struct {
	cost        atomic.Uint64
	speed       atomic.Uint64
	liquidity   atomic.Uint64
	risk        atomic.Uint64
	lastUpdated atomic.Int64 // unix seconds
}

// NewEdgeMetricsCell constructs a cell pre-populated with m.
func NewEdgeMetricsCell(m EdgeMetrics) *EdgeMetricsCell {
	c := &EdgeMetricsCell{}
	c.store(m)
	return c
}

// Load returns a consistent-enough snapshot of the cell's current value.
func (c *EdgeMetricsCell) Load() EdgeMetrics {
	return EdgeMetrics{
		Cost:      float64(c.cost.Load()) / costRiskScale,
		Speed:     float64(c.speed.Load()) / speedScale,
		Liquidity: float64(c.liquidity.Load()) / liquidityScale,
		Risk:      float64(c.risk.Load()) / costRiskScale,
	}
}

// Store overwrites the cell's value in place.
func (c *EdgeMetricsCell) Store(m EdgeMetrics) {
	c.store(m)
}

func (c *EdgeMetricsCell) store(m EdgeMetrics) {
	c.cost.Store(uint64(m.Cost * costRiskScale))
	c.speed.Store(uint64(m.Speed * speedScale))
	c.liquidity.Store(uint64(m.Liquidity * liquidityScale))
	c.risk.Store(uint64(m.Risk * costRiskScale))
	c.lastUpdated.Store(time.Now().Unix())
}

// LastUpdated returns the wall-clock second of the most recent Store.
func (c *EdgeMetricsCell) LastUpdated() time.Time {
	return time.Unix(c.lastUpdated.Load(), 0)
}
