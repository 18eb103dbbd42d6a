package core

import "testing"

func TestFindPathDirectRoute(t *testing.T) {
	g := NewGraph(4)
	a := g.GetOrCreateAssetNode("ethereum", "0xAAA", "USDC")
	b := g.GetOrCreateAssetNode("polygon", "0xBBB", "USDC")
	g.AddEdge(a, b, "stargate", EdgeMetrics{Cost: 1, Speed: 30, Liquidity: 1000, Risk: 1}, nil, nil)

	re := NewRoutingEngine(g, 4)
	p := re.FindPath(a, b, BalancedParams())
	if p == nil {
		t.Fatalf("expected a direct path")
	}
	if len(p.Hops) != 1 || p.Hops[0].From != a || p.Hops[0].To != b {
		t.Fatalf("expected single direct hop, got %+v", p.Hops)
	}
}

func TestFindPathUnreachable(t *testing.T) {
	g := NewGraph(4)
	a := g.GetOrCreateAssetNode("ethereum", "0xAAA", "USDC")
	b := g.GetOrCreateAssetNode("polygon", "0xBBB", "USDC")

	re := NewRoutingEngine(g, 4)
	p := re.FindPath(a, b, BalancedParams())
	if p != nil {
		t.Fatalf("expected nil path for unreachable pair, got %+v", p)
	}
}

func TestFindPathRespectsHopLimit(t *testing.T) {
	g := NewGraph(4)
	a := g.GetOrCreateAssetNode("ethereum", "0xAAA", "USDC")
	b := g.GetOrCreateAssetNode("polygon", "0xBBB", "USDC")
	c := g.GetOrCreateAssetNode("arbitrum", "0xCCC", "USDC")
	g.AddEdge(a, b, "stargate", EdgeMetrics{Cost: 1, Speed: 10, Liquidity: 100, Risk: 1}, nil, nil)
	g.AddEdge(b, c, "stargate", EdgeMetrics{Cost: 1, Speed: 10, Liquidity: 100, Risk: 1}, nil, nil)

	re := NewRoutingEngine(g, 1)
	p := re.FindPath(a, c, BalancedParams())
	if p != nil {
		t.Fatalf("expected nil path when hop limit blocks the only route, got %+v", p)
	}

	re2 := NewRoutingEngine(g, 2)
	p2 := re2.FindPath(a, c, BalancedParams())
	if p2 == nil || len(p2.Hops) != 2 {
		t.Fatalf("expected 2-hop path once hop limit allows it, got %+v", p2)
	}
}

func TestFindPathPicksCheaperRoute(t *testing.T) {
	g := NewGraph(4)
	a := g.GetOrCreateAssetNode("ethereum", "0xAAA", "USDC")
	b := g.GetOrCreateAssetNode("polygon", "0xBBB", "USDC")
	c := g.GetOrCreateAssetNode("arbitrum", "0xCCC", "USDC")

	// direct a->c is expensive, a->b->c is cheap.
	g.AddEdge(a, c, "wormhole", EdgeMetrics{Cost: 100, Speed: 5, Liquidity: 100, Risk: 1}, nil, nil)
	g.AddEdge(a, b, "stargate", EdgeMetrics{Cost: 1, Speed: 10, Liquidity: 100, Risk: 1}, nil, nil)
	g.AddEdge(b, c, "stargate", EdgeMetrics{Cost: 1, Speed: 10, Liquidity: 100, Risk: 1}, nil, nil)

	re := NewRoutingEngine(g, 4)
	p := re.FindPath(a, c, CheapestParams())
	if p == nil {
		t.Fatalf("expected a path")
	}
	if p.TotalCost != 2 {
		t.Fatalf("expected cheaper 2-hop route with total cost 2, got %v (hops=%d)", p.TotalCost, len(p.Hops))
	}
}

func TestFindCandidatePathsDedupsAndBounds(t *testing.T) {
	g := NewGraph(4)
	a := g.GetOrCreateAssetNode("ethereum", "0xAAA", "USDC")
	b := g.GetOrCreateAssetNode("polygon", "0xBBB", "USDC")
	g.AddEdge(a, b, "stargate", EdgeMetrics{Cost: 1, Speed: 10, Liquidity: 100, Risk: 1}, nil, nil)

	re := NewRoutingEngine(g, 4)
	paths := re.FindCandidatePaths(a, b, BalancedParams(), 5)
	if len(paths) != 1 {
		t.Fatalf("expected the baseline search to collapse to a single candidate path, got %d", len(paths))
	}
}

func TestFindCandidatePathsNoPathReturnsEmpty(t *testing.T) {
	g := NewGraph(4)
	a := g.GetOrCreateAssetNode("ethereum", "0xAAA", "USDC")
	b := g.GetOrCreateAssetNode("polygon", "0xBBB", "USDC")

	re := NewRoutingEngine(g, 4)
	paths := re.FindCandidatePaths(a, b, BalancedParams(), 5)
	if len(paths) != 0 {
		t.Fatalf("expected no candidate paths, got %d", len(paths))
	}
}
