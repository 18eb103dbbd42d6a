package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"polypath/core"
	"polypath/pkg/config"
)

func TestWormholeFetchMetricsParsesQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"sourceChain": "ethereum",
			"targetChain": "avalanche",
			"relayerFeeUsd": 2.1,
			"estimatedSeconds": 120,
			"availableLiquidity": 5000,
			"riskScore": 3
		}`))
	}))
	defer srv.Close()

	adapter := newWormholeAdapter(config.BridgeConfig{BaseURL: srv.URL})
	edge, err := adapter.FetchMetrics(context.Background(), core.QuoteRequest{
		SrcChain: "ethereum", DstChain: "avalanche", SrcToken: "USDC", DstToken: "USDC.e",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if edge.From != "ethereum" || edge.To != "avalanche" {
		t.Fatalf("unexpected from/to: %+v", edge)
	}
	if edge.Cost != 2.1 || edge.Speed != 120 || edge.Liquidity != 5000 || edge.Risk != 3 {
		t.Fatalf("unexpected edge: %+v", edge)
	}
}

func TestWormholeFetchMetricsMissingChainsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	adapter := newWormholeAdapter(config.BridgeConfig{BaseURL: srv.URL})
	_, err := adapter.FetchMetrics(context.Background(), core.QuoteRequest{SrcChain: "ethereum", DstChain: "avalanche"})
	if err == nil {
		t.Fatalf("expected an error when chain identifiers are missing")
	}
}
