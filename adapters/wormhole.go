package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"polypath/core"
	"polypath/pkg/config"
)

func init() {
	Register("wormhole", newWormholeAdapter)
}

// WormholeAdapter quotes routes through Wormhole's token bridge relayer
// quote API. Unlike the routing prototype's wormhole adapter (left
// unimplemented, always returning null), this one actually calls out.
type WormholeAdapter struct {
	baseURL string
	pairs   map[string]string
	client  *http.Client
}

func newWormholeAdapter(cfg config.BridgeConfig) core.BridgeAdapter {
	base := cfg.BaseURL
	if base == "" {
		base = "https://api.wormhole.com"
	}
	return &WormholeAdapter{baseURL: base, pairs: pairTable(cfg.Pairs), client: defaultHTTPClient}
}

func (a *WormholeAdapter) Name() string { return "wormhole" }

func (a *WormholeAdapter) SupportedPairs() map[string]string { return a.pairs }

func (a *WormholeAdapter) IsSupportedPair(srcChain, dstChain string) bool {
	got, ok := a.pairs[srcChain]
	return ok && got == dstChain
}

type wormholeRelayerQuote struct {
	SourceChain        string  `json:"sourceChain"`
	TargetChain        string  `json:"targetChain"`
	RelayerFeeUSD      float64 `json:"relayerFeeUsd"`
	EstimatedSeconds   float64 `json:"estimatedSeconds"`
	AvailableLiquidity float64 `json:"availableLiquidity"`
	RiskScore          float64 `json:"riskScore"`
}

// FetchMetrics calls Wormhole's relayer quote endpoint and maps its
// response directly onto a core.BridgeEdge — the relayer API already
// reports cost/speed/liquidity/risk-shaped fields, unlike Stargate's
// nested quotes array.
func (a *WormholeAdapter) FetchMetrics(ctx context.Context, req core.QuoteRequest) (core.BridgeEdge, error) {
	q := url.Values{}
	q.Set("sourceChain", req.SrcChain)
	q.Set("targetChain", req.DstChain)
	q.Set("sourceToken", req.SrcToken)
	q.Set("targetToken", req.DstToken)
	q.Set("amount", req.SrcAmount)
	q.Set("recipient", req.DstAddress)

	endpoint := a.baseURL + "/v1/relayer/quote?" + q.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return core.BridgeEdge{}, fmt.Errorf("wormhole: build request: %w", err)
	}

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return core.BridgeEdge{}, fmt.Errorf("wormhole: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return core.BridgeEdge{}, fmt.Errorf("wormhole: unexpected status %d", resp.StatusCode)
	}

	var quote wormholeRelayerQuote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return core.BridgeEdge{}, fmt.Errorf("wormhole: decode response: %w", err)
	}
	if quote.SourceChain == "" || quote.TargetChain == "" {
		return core.BridgeEdge{}, fmt.Errorf("wormhole: quote missing chain identifiers")
	}

	return core.BridgeEdge{
		From:      quote.SourceChain,
		To:        quote.TargetChain,
		Cost:      quote.RelayerFeeUSD,
		Speed:     quote.EstimatedSeconds,
		Liquidity: quote.AvailableLiquidity,
		Risk:      quote.RiskScore,
	}, nil
}
