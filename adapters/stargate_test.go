package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"polypath/core"
	"polypath/pkg/config"
)

func TestStargateFetchMetricsParsesFirstQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"quotes": [{
				"srcChainKey": "ethereum",
				"dstChainKey": "polygon",
				"fees": [{"amount": "1.5"}, {"amount": "0.5"}],
				"duration": {"estimated": 45},
				"dstAmount": "998.0"
			}]
		}`))
	}))
	defer srv.Close()

	adapter := newStargateAdapter(config.BridgeConfig{BaseURL: srv.URL})
	edge, err := adapter.FetchMetrics(context.Background(), core.QuoteRequest{
		SrcChain: "ethereum", DstChain: "polygon", SrcToken: "USDC", DstToken: "USDC",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if edge.Cost != 2.0 {
		t.Fatalf("expected summed cost 2.0, got %v", edge.Cost)
	}
	if edge.Speed != 45 {
		t.Fatalf("expected speed 45, got %v", edge.Speed)
	}
	if edge.Liquidity != 998.0 {
		t.Fatalf("expected liquidity 998.0, got %v", edge.Liquidity)
	}
	if edge.Risk != 450 {
		t.Fatalf("expected risk min(45*10, 1000)=450, got %v", edge.Risk)
	}
}

func TestStargateFetchMetricsNoQuotesErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quotes": []}`))
	}))
	defer srv.Close()

	adapter := newStargateAdapter(config.BridgeConfig{BaseURL: srv.URL})
	_, err := adapter.FetchMetrics(context.Background(), core.QuoteRequest{SrcChain: "ethereum", DstChain: "polygon"})
	if err == nil {
		t.Fatalf("expected an error for an empty quotes array")
	}
}

func TestStargateFetchMetricsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	adapter := newStargateAdapter(config.BridgeConfig{BaseURL: srv.URL})
	_, err := adapter.FetchMetrics(context.Background(), core.QuoteRequest{SrcChain: "ethereum", DstChain: "polygon"})
	if err == nil {
		t.Fatalf("expected an error for a 500 response")
	}
}
