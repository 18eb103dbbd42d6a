package core

import "sync/atomic"

// Edge is a directed connection between two nodes produced by a bridge
// adapter, carrying live metrics. Edges are never physically removed; they
// are retired by clearing the active flag, so a handle obtained from
// get_outgoing_edges/get_incoming_edges remains valid (and keeps observing
// metric updates) for the lifetime of the process.
type Edge struct {
	From       NodeID
	To         NodeID
	BridgeName string
	Metrics    *EdgeMetricsCell
	active     atomic.Bool
	MinAmount  *float64
	MaxAmount  *float64
}

// newEdge constructs an active Edge.
func newEdge(from, to NodeID, bridgeName string, m EdgeMetrics, minAmount, maxAmount *float64) *Edge {
	e := &Edge{
		From:       from,
		To:         to,
		BridgeName: bridgeName,
		Metrics:    NewEdgeMetricsCell(m),
		MinAmount:  minAmount,
		MaxAmount:  maxAmount,
	}
	e.active.Store(true)
	return e
}

// Active reports whether the edge is currently live (not retired).
func (e *Edge) Active() bool {
	return e.active.Load()
}

// Deactivate retires the edge. Retired edges are excluded from
// get_outgoing_edges/get_incoming_edges/neighbours but the handle itself
// stays valid.
func (e *Edge) Deactivate() {
	e.active.Store(false)
}

// GetMetrics returns the edge's current metric snapshot.
func (e *Edge) GetMetrics() EdgeMetrics {
	return e.Metrics.Load()
}

// matches reports whether this edge is the one identified by (from, to, bridgeName).
func (e *Edge) matches(from, to NodeID, bridgeName string) bool {
	return e.From == from && e.To == to && e.BridgeName == bridgeName
}
