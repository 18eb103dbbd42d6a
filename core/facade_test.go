package core

import "testing"

func TestRouterRouteEndToEnd(t *testing.T) {
	g := NewGraph(4)
	r := NewRouter(g, 4, 5, nil)

	a := g.GetOrCreateAssetNode("ethereum", "0xAAA", "USDC")
	b := g.GetOrCreateAssetNode("polygon", "0xBBB", "USDC")
	g.AddEdge(a, b, "stargate", EdgeMetrics{Cost: 1, Speed: 10, Liquidity: 1000, Risk: 1}, nil, nil)

	ranked := r.Route(RouteIntent{
		FromChain:  "ethereum",
		FromToken:  "0xAAA",
		ToChain:    "polygon",
		ToToken:    "0xBBB",
		Amount:     100,
		Preference: "cheapest",
	}, 5)

	if len(ranked) != 1 {
		t.Fatalf("expected 1 ranked path, got %d", len(ranked))
	}
	if ranked[0].Rank != 1 {
		t.Fatalf("expected rank 1, got %+v", ranked[0])
	}
}

func TestRouterRouteNoPathReturnsEmptyNotNilPanic(t *testing.T) {
	g := NewGraph(4)
	r := NewRouter(g, 4, 5, nil)

	ranked := r.Route(RouteIntent{
		FromChain:  "ethereum",
		FromToken:  "0xAAA",
		ToChain:    "polygon",
		ToToken:    "0xBBB",
		Preference: "balanced",
	}, 5)

	if len(ranked) != 0 {
		t.Fatalf("expected no ranked paths for an unreachable pair, got %+v", ranked)
	}
}

func TestRouterRouteLazilyCreatesAssetNodes(t *testing.T) {
	g := NewGraph(4)
	r := NewRouter(g, 4, 5, nil)

	before := len(g.nodes)
	r.Route(RouteIntent{FromChain: "ethereum", FromToken: "0xNEW1", ToChain: "polygon", ToToken: "0xNEW2"}, 5)
	after := len(g.nodes)

	if after != before+2 {
		t.Fatalf("expected Route to lazily create both endpoint asset nodes, before=%d after=%d", before, after)
	}
}
