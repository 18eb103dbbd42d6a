package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"polypath/core"
	"polypath/pkg/config"
)

func init() {
	Register("stargate", newStargateAdapter)
}

// StargateAdapter quotes routes through Stargate Finance's public quote API.
type StargateAdapter struct {
	baseURL string
	pairs   map[string]string
	client  *http.Client
}

func newStargateAdapter(cfg config.BridgeConfig) core.BridgeAdapter {
	base := cfg.BaseURL
	if base == "" {
		base = "https://stargate.finance"
	}
	return &StargateAdapter{baseURL: base, pairs: pairTable(cfg.Pairs), client: defaultHTTPClient}
}

func (a *StargateAdapter) Name() string { return "stargate" }

func (a *StargateAdapter) SupportedPairs() map[string]string { return a.pairs }

func (a *StargateAdapter) IsSupportedPair(srcChain, dstChain string) bool {
	got, ok := a.pairs[srcChain]
	return ok && got == dstChain
}

type stargateQuoteResponse struct {
	Quotes []stargateQuote `json:"quotes"`
}

type stargateQuote struct {
	SrcChainKey string            `json:"srcChainKey"`
	DstChainKey string            `json:"dstChainKey"`
	Fees        []stargateFee     `json:"fees"`
	Duration    stargateDuration  `json:"duration"`
	DstAmount   string            `json:"dstAmount"`
	SrcAmount   string            `json:"srcAmount"`
}

type stargateFee struct {
	Amount string `json:"amount"`
}

type stargateDuration struct {
	Estimated float64 `json:"estimated"`
}

// FetchMetrics calls Stargate's /api/v1/quotes endpoint and maps its first
// returned quote onto a core.BridgeEdge. cost is the sum of all fee amounts;
// speed is the estimated duration in seconds; liquidity is the destination
// amount (falling back to the source amount); risk is a simple function of
// speed, matching the routing prototype's placeholder risk heuristic.
func (a *StargateAdapter) FetchMetrics(ctx context.Context, req core.QuoteRequest) (core.BridgeEdge, error) {
	q := url.Values{}
	q.Set("srcChainKey", req.SrcChain)
	q.Set("dstChainKey", req.DstChain)
	q.Set("srcToken", req.SrcToken)
	q.Set("dstToken", req.DstToken)
	q.Set("srcAmount", req.SrcAmount)
	q.Set("dstAmountMin", req.DstAmountMin)
	q.Set("srcAddress", req.SrcAddress)
	q.Set("dstAddress", req.DstAddress)

	endpoint := a.baseURL + "/api/v1/quotes?" + q.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return core.BridgeEdge{}, fmt.Errorf("stargate: build request: %w", err)
	}

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return core.BridgeEdge{}, fmt.Errorf("stargate: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return core.BridgeEdge{}, fmt.Errorf("stargate: unexpected status %d", resp.StatusCode)
	}

	var parsed stargateQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return core.BridgeEdge{}, fmt.Errorf("stargate: decode response: %w", err)
	}
	if len(parsed.Quotes) == 0 {
		return core.BridgeEdge{}, fmt.Errorf("stargate: no quotes found in response")
	}
	quote := parsed.Quotes[0]

	var cost float64
	for _, fee := range quote.Fees {
		if amt, err := strconv.ParseFloat(fee.Amount, 64); err == nil {
			cost += amt
		}
	}

	speed := quote.Duration.Estimated

	liquidity, ok := parseFloatOr(quote.DstAmount, quote.SrcAmount)
	if !ok {
		return core.BridgeEdge{}, fmt.Errorf("stargate: quote missing both dstAmount and srcAmount")
	}

	risk := 500.0
	if speed > 0 {
		risk = math.Min(speed*10.0, 1000.0)
	}

	return core.BridgeEdge{
		From:      quote.SrcChainKey,
		To:        quote.DstChainKey,
		Cost:      cost,
		Speed:     speed,
		Liquidity: liquidity,
		Risk:      risk,
	}, nil
}

func parseFloatOr(primary, fallback string) (float64, bool) {
	if v, err := strconv.ParseFloat(primary, 64); err == nil {
		return v, true
	}
	if v, err := strconv.ParseFloat(fallback, 64); err == nil {
		return v, true
	}
	return 0, false
}
