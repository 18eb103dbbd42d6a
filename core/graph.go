package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// shard is one partition of the edge index, independently lockable so
// distinct shards can be mutated concurrently. Edge-list append happens
// under mu; readers snapshot the slice under the same lock and then release
// it before iterating, so iteration never holds a shard lock across a
// search step.
type shard struct {
	mu    sync.RWMutex
	edges map[NodeID][]*Edge
}

func newShard() *shard {
	return &shard{edges: make(map[NodeID][]*Edge)}
}

func (s *shard) append(id NodeID, e *Edge) {
	s.mu.Lock()
	s.edges[id] = append(s.edges[id], e)
	s.mu.Unlock()
}

// snapshot returns a copy of the edge slice for id, filtered to active
// edges unless includeInactive is set. The copy means the caller iterates
// without holding s.mu.
func (s *shard) snapshot(id NodeID, includeInactive bool) []*Edge {
	s.mu.RLock()
	list := s.edges[id]
	out := make([]*Edge, 0, len(list))
	for _, e := range list {
		if includeInactive || e.Active() {
			out = append(out, e)
		}
	}
	s.mu.RUnlock()
	return out
}

// Graph is a sharded, concurrently mutable store of Nodes and directed
// Edges. Reads (routing searches) and writes (adapter intake) proceed
// without a global lock: the nodes map and each outgoing/incoming edge
// shard have their own fine-grained lock, and EdgeMetricsCell updates are
// lock-free (see metrics.go).
type Graph struct {
	nodesMu sync.RWMutex
	nodes   map[NodeID]*Node

	outgoing   []*shard
	incoming   []*shard
	shardMask  NodeID
	shardCount int

	version atomic.Uint64
}

// NewGraph constructs a Graph with shardCount outgoing/incoming shards.
// shardCount must be a power of two.
func NewGraph(shardCount int) *Graph {
	if shardCount <= 0 || shardCount&(shardCount-1) != 0 {
		panic("core: shard count must be a power of two")
	}
	g := &Graph{
		nodes:      make(map[NodeID]*Node),
		outgoing:   make([]*shard, shardCount),
		incoming:   make([]*shard, shardCount),
		shardMask:  NodeID(shardCount - 1),
		shardCount: shardCount,
	}
	for i := range g.outgoing {
		g.outgoing[i] = newShard()
		g.incoming[i] = newShard()
	}
	return g
}

func (g *Graph) shardIndex(id NodeID) NodeID {
	return id & g.shardMask
}

// GetOrCreateAssetNode returns the NodeID for (chain, tokenAddress),
// creating the node on first reference. Idempotent: a second call with the
// same arguments returns the existing NodeID unchanged — the symbol is not
// updated on re-get.
func (g *Graph) GetOrCreateAssetNode(chain, tokenAddress, tokenSymbol string) NodeID {
	id := assetNodeID(chain, tokenAddress)
	g.nodesMu.RLock()
	_, exists := g.nodes[id]
	g.nodesMu.RUnlock()
	if exists {
		return id
	}

	g.nodesMu.Lock()
	defer g.nodesMu.Unlock()
	if _, exists := g.nodes[id]; exists {
		return id
	}
	g.nodes[id] = &Node{
		ID:   id,
		Kind: NodeAsset,
		Asset: AssetPayload{
			Chain:        chain,
			TokenAddress: tokenAddress,
			TokenSymbol:  tokenSymbol,
		},
		CreatedAt: time.Now().UTC(),
	}
	return id
}

// GetOrCreateExchangeNode returns the NodeID for (name, chain), creating the
// node on first reference. Idempotent, same contract as GetOrCreateAssetNode.
func (g *Graph) GetOrCreateExchangeNode(name, chain string) NodeID {
	id := exchangeNodeID(name, chain)
	g.nodesMu.RLock()
	_, exists := g.nodes[id]
	g.nodesMu.RUnlock()
	if exists {
		return id
	}

	g.nodesMu.Lock()
	defer g.nodesMu.Unlock()
	if _, exists := g.nodes[id]; exists {
		return id
	}
	g.nodes[id] = &Node{
		ID:        id,
		Kind:      NodeExchange,
		Exchange:  ExchangePayload{Name: name, Chain: chain},
		CreatedAt: time.Now().UTC(),
	}
	return id
}

// GetNode returns the node for id, if any.
func (g *Graph) GetNode(id NodeID) (*Node, bool) {
	g.nodesMu.RLock()
	defer g.nodesMu.RUnlock()
	n, ok := g.nodes[id]
	return n, ok
}

// AddEdge appends a new directed edge to both the outgoing index at
// shard(from) and the incoming index at shard(to) — the same Edge object in
// both, so a metric update is observed from either direction without
// re-insertion. Duplicates with the same (from, to, bridgeName) are not
// deduplicated; UpdateEdgeMetrics is the intended path for re-quotes.
func (g *Graph) AddEdge(from, to NodeID, bridgeName string, metrics EdgeMetrics, minAmount, maxAmount *float64) bool {
	e := newEdge(from, to, bridgeName, metrics, minAmount, maxAmount)
	g.outgoing[g.shardIndex(from)].append(from, e)
	g.incoming[g.shardIndex(to)].append(to, e)
	g.version.Add(1)
	return true
}

// UpdateEdgeMetrics locates the first active edge matching (from, to,
// bridgeName) via shard(from)'s outgoing index and updates its metrics in
// place. Returns false, not an error, if no match was found.
func (g *Graph) UpdateEdgeMetrics(from, to NodeID, bridgeName string, metrics EdgeMetrics) bool {
	s := g.outgoing[g.shardIndex(from)]
	s.mu.RLock()
	var match *Edge
	for _, e := range s.edges[from] {
		if e.Active() && e.matches(from, to, bridgeName) {
			match = e
			break
		}
	}
	s.mu.RUnlock()
	if match == nil {
		return false
	}
	match.Metrics.Store(metrics)
	g.version.Add(1)
	return true
}

// DeactivateEdge retires the first active edge matching (from, to,
// bridgeName). Returns false if no match was found.
func (g *Graph) DeactivateEdge(from, to NodeID, bridgeName string) bool {
	s := g.outgoing[g.shardIndex(from)]
	s.mu.RLock()
	var match *Edge
	for _, e := range s.edges[from] {
		if e.Active() && e.matches(from, to, bridgeName) {
			match = e
			break
		}
	}
	s.mu.RUnlock()
	if match == nil {
		return false
	}
	match.Deactivate()
	g.version.Add(1)
	return true
}

// GetOutgoingEdges returns the active edges leaving from. Returned edges
// are stable handles: subsequent metric updates remain observable through
// them.
func (g *Graph) GetOutgoingEdges(from NodeID) []*Edge {
	return g.outgoing[g.shardIndex(from)].snapshot(from, false)
}

// GetIncomingEdges returns the active edges arriving at to. Symmetric to
// GetOutgoingEdges.
func (g *Graph) GetIncomingEdges(to NodeID) []*Edge {
	return g.incoming[g.shardIndex(to)].snapshot(to, false)
}

// Neighbour is one entry of graph.neighbours: a reachable node and the
// steering weight the search should use to reach it.
type Neighbour struct {
	Node   NodeID
	Weight float64
}

// Neighbours enumerates active outgoing edges from node and computes a
// steering weight for each from a consistent metric snapshot:
//
//	weight = alpha*cost + beta*speed + gamma*liquidity + delta*risk
//
// This is raw and directional: for the cheapest preset, a higher cost
// produces a higher weight (more deprioritized). Liquidity is added
// positively here on purpose — inversion for "more liquidity is better"
// happens downstream in the scoring pipeline's normalization, not here.
// These weights exist only to steer the search; they are never used to
// rank the final result.
//
// open question (spec §9): adding liquidity with a positive sign means a
// nonzero gamma discourages liquid routes during search itself, which is
// inconsistent with scoring's "higher liquidity is better". Preserved
// verbatim pending product review.
func (g *Graph) Neighbours(node NodeID, params RoutingParams) []Neighbour {
	edges := g.GetOutgoingEdges(node)
	out := make([]Neighbour, 0, len(edges))
	for _, e := range edges {
		m := e.GetMetrics()
		w := params.Alpha*m.Cost + params.Beta*m.Speed + params.Gamma*m.Liquidity + params.Delta*m.Risk
		out = append(out, Neighbour{Node: e.To, Weight: w})
	}
	return out
}

// Version returns the graph's monotonic mutation counter, incremented on
// every add/update/deactivate call. Callers may use it to invalidate
// external caches keyed on graph state.
func (g *Graph) Version() uint64 {
	return g.version.Load()
}

// NodeCount returns the number of nodes currently tracked, asset and
// exchange combined.
func (g *Graph) NodeCount() int {
	g.nodesMu.RLock()
	defer g.nodesMu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of active edges across every outgoing shard.
// Inactive (deactivated) edges are not counted, matching GetOutgoingEdges'
// filtering.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, s := range g.outgoing {
		s.mu.RLock()
		for _, edges := range s.edges {
			for _, e := range edges {
				if e.Active() {
					count++
				}
			}
		}
		s.mu.RUnlock()
	}
	return count
}
