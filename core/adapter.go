package core

import "context"

// BridgeEdge is the external payload a bridge adapter produces: one
// candidate quote for moving value from one (chain, token) pair to
// another. It is the Go mirror of the Rust prototype's serde-serialized
// BridgeEdge struct; when transported as JSON it has exactly these keys.
type BridgeEdge struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Cost      float64 `json:"cost"`
	Speed     float64 `json:"speed"`
	Liquidity float64 `json:"liquidity"`
	Risk      float64 `json:"risk"`
}

// BridgeAdapter is the uniform capability every external bridge integration
// implements. Concrete adapters (adapters.Stargate, adapters.Wormhole) are
// constructed through a name-keyed factory (adapters.New) rather than by
// runtime type inspection.
type BridgeAdapter interface {
	// Name identifies the bridge product, e.g. "stargate".
	Name() string

	// SupportedPairs reports the (srcChain -> dstChain) pairs this adapter
	// was configured with, keyed and valued by chain name.
	SupportedPairs() map[string]string

	// IsSupportedPair reports whether the adapter can quote the given
	// chain pair, without making a network call.
	IsSupportedPair(srcChain, dstChain string) bool

	// FetchMetrics calls out to the bridge's remote quote service and
	// returns one BridgeEdge. Implementations return plain errors, both for
	// transport/timeout/malformed JSON failures and for a well-formed
	// response missing required fields (e.g. no quotes); Intake wraps every
	// FetchMetrics failure as a KindNetwork error, so the two cases are not
	// told apart by Kind. Failures propagate to the caller; they are never
	// silently absorbed.
	FetchMetrics(ctx context.Context, req QuoteRequest) (BridgeEdge, error)
}

// QuoteRequest bundles the parameters a bridge adapter's remote quote API
// needs.
type QuoteRequest struct {
	SrcChain     string
	DstChain     string
	SrcToken     string
	DstToken     string
	SrcAmount    string
	DstAmountMin string
	SrcAddress   string
	DstAddress   string
}
