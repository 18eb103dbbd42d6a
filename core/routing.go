package core

import (
	"container/heap"
	"math"
)

// RoutingEngine performs a bounded-depth best-first search over a Graph
// whose edge weights are a runtime function of caller-supplied preferences
// (RoutingParams), so precomputed shortest-path tables don't apply. The
// priority-queue shape follows the teacher repo's amm.go bestPath — a
// container/heap min-heap of search states — generalized from a
// single-objective swap-price Dijkstra to an A* skeleton with a heuristic
// hook (currently always 0, which reduces the search to Dijkstra; the hook
// is kept for a future chain-distance estimate).
type RoutingEngine struct {
	graph   *Graph
	maxHops int
}

// NewRoutingEngine constructs a RoutingEngine bounded to maxHops edges per
// branch.
func NewRoutingEngine(graph *Graph, maxHops int) *RoutingEngine {
	return &RoutingEngine{graph: graph, maxHops: maxHops}
}

// searchState is one entry of the open set.
type searchState struct {
	node    NodeID
	gScore  float64
	fScore  float64
	hops    int
	tieRank uint64 // insertion order, for deterministic tie-breaking by NodeID then arrival order
}

// openQueue is a container/heap min-heap ordered by fScore, with NodeID and
// then arrival order breaking ties deterministically. NaN fScores (not
// expected in practice, since metrics are non-negative) are treated as
// equal to any other value rather than panicking, matching the teacher's
// partial_cmp().unwrap_or(Equal) fallback in amm.go/routing.rs.
type openQueue []searchState

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.fScore != b.fScore {
		if math.IsNaN(a.fScore) || math.IsNaN(b.fScore) {
			return false
		}
		return a.fScore < b.fScore
	}
	if a.node != b.node {
		return a.node < b.node
	}
	return a.tieRank < b.tieRank
}

func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openQueue) Push(x any) { *q = append(*q, x.(searchState)) }

func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// predEntry records, for a node reached during search, the predecessor node
// and the edge used to reach it.
type predEntry struct {
	from NodeID
	edge *Edge
}

// FindPath performs a bounded-depth best-first search from start to end
// under params. Returns nil if start and end are unreachable within
// maxHops hops; never returns an error for "no path" (see spec §7).
func (re *RoutingEngine) FindPath(start, end NodeID, params RoutingParams) *Path {
	if start == end {
		return nil
	}

	open := &openQueue{}
	heap.Init(open)
	gScore := map[NodeID]float64{start: 0}
	cameFrom := map[NodeID]predEntry{}
	closed := map[NodeID]bool{}

	var seq uint64
	heap.Push(open, searchState{node: start, gScore: 0, fScore: re.heuristic(start, end), hops: 0, tieRank: seq})
	seq++

	for open.Len() > 0 {
		current := heap.Pop(open).(searchState)

		if current.node == end {
			return re.reconstructPath(start, end, cameFrom)
		}
		if closed[current.node] || current.hops >= re.maxHops {
			continue
		}
		closed[current.node] = true

		currentEdges := re.graph.GetOutgoingEdges(current.node)
		for _, nb := range re.graph.Neighbours(current.node, params) {
			if closed[nb.Node] {
				continue
			}
			tentativeG := current.gScore + nb.Weight
			best, known := gScore[nb.Node]
			if known && tentativeG >= best {
				continue
			}

			// locate the actual edge object: first outgoing edge from
			// current.node to nb.Node, tie-broken by insertion order
			// (GetOutgoingEdges already returns edges in insertion order).
			var edge *Edge
			for _, e := range currentEdges {
				if e.To == nb.Node {
					edge = e
					break
				}
			}
			if edge == nil {
				continue
			}

			cameFrom[nb.Node] = predEntry{from: current.node, edge: edge}
			gScore[nb.Node] = tentativeG

			fScore := tentativeG + re.heuristic(nb.Node, end)
			heap.Push(open, searchState{node: nb.Node, gScore: tentativeG, fScore: fScore, hops: current.hops + 1, tieRank: seq})
			seq++
		}
	}

	return nil
}

// reconstructPath walks predecessors back from end to start, collecting
// Hops, then reverses them into source-to-destination order. Metric
// snapshots are taken by calling edge.GetMetrics() here, at reconstruction
// time — not at the moment the hop was chosen during search.
//
// open question (spec §9): because reconstruction re-reads metrics, a
// returned Path's aggregates may reflect updates that landed after the
// search decision was made. If strict snapshot consistency is ever
// required, capture EdgeMetrics at neighbour-expansion time in predEntry
// and thread it through instead of re-reading here.
func (re *RoutingEngine) reconstructPath(start, end NodeID, cameFrom map[NodeID]predEntry) *Path {
	var hops []Hop
	current := end
	for current != start {
		pred, ok := cameFrom[current]
		if !ok {
			break
		}
		hops = append(hops, Hop{
			From:       pred.from,
			To:         current,
			BridgeName: pred.edge.BridgeName,
			Metrics:    pred.edge.GetMetrics(),
		})
		current = pred.from
	}
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}

	p := &Path{MinLiquidity: math.Inf(1)}
	for _, h := range hops {
		p.TotalCost += h.Metrics.Cost
		p.TotalTime += h.Metrics.Speed
		p.TotalRisk += h.Metrics.Risk
		if h.Metrics.Liquidity < p.MinLiquidity {
			p.MinLiquidity = h.Metrics.Liquidity
		}
	}
	p.Hops = hops
	return p
}

// heuristic is the A* lower-bound estimate from `from` to `to`. It is
// always 0, which reduces the search to plain Dijkstra; the hook is kept
// so a future chain-distance estimate can slot in without touching
// FindPath.
func (re *RoutingEngine) heuristic(from, to NodeID) float64 {
	return 0
}

// FindCandidatePaths returns up to maxPaths distinct paths from start to
// end, deduplicated by their ordered NodeID signature.
//
// open question (spec §9): this baseline calls the same search repeatedly
// without edge exclusions, so every call returns the same shortest path;
// signature-dedup then collapses the result to a single entry. True
// K-shortest-paths (e.g. Yen's algorithm, edge-exclusion diversification)
// is a declared extension point, not implemented here — this behavior is
// preserved verbatim rather than silently "fixed".
func (re *RoutingEngine) FindCandidatePaths(start, end NodeID, params RoutingParams, maxPaths int) []Path {
	var out []Path
	seen := map[string]bool{}
	for len(out) < maxPaths {
		p := re.FindPath(start, end, params)
		if p == nil {
			break
		}
		sig := p.signature()
		if seen[sig] {
			break
		}
		seen[sig] = true
		out = append(out, *p)
	}
	return out
}
