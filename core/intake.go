package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Intake converts external bridge-adapter payloads into graph node/edge
// upserts. It is the only write path from the network boundary into the
// Graph: adapter failures (NetworkError, DataError) propagate to the
// caller and never reach the graph as a partial write.
type Intake struct {
	graph  *Graph
	log    *logrus.Logger
	cache  quoteCache
	ttlSec int64
}

// quoteCache is the narrow interface Intake needs from internal/cache's TTL
// cache, kept here to avoid a dependency cycle (internal/cache does not
// import core).
type quoteCache interface {
	Get(key string) (BridgeEdge, bool)
	Set(key string, value BridgeEdge)
}

// NewIntake constructs an Intake writing into graph and logging through
// log. A nil cache disables quote caching entirely.
func NewIntake(graph *Graph, log *logrus.Logger, cache quoteCache, cacheTTLSeconds int64) *Intake {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Intake{graph: graph, log: log, cache: cache, ttlSec: cacheTTLSeconds}
}

// FetchAndUpsert calls adapter.FetchMetrics for req (or reuses a cached
// quote within the configured TTL), then upserts the resulting exchange and
// asset nodes and the edge between them. The bridge's exchange node is
// keyed by (adapter.Name(), req.SrcChain); the two token nodes by
// (req.SrcChain, req.SrcToken) / (req.DstChain, req.DstToken).
//
// Node/edge identity in this flow follows the asset-to-asset shape implied
// by BridgeEdge{from, to, ...}: From/To are chain-qualified token
// identifiers produced by the adapter, not the exchange node — the
// exchange node exists so the graph can be queried "what routes through
// bridge X", but routing itself hops asset -> asset via the bridge's name
// on the edge.
func (in *Intake) FetchAndUpsert(ctx context.Context, adapter BridgeAdapter, req QuoteRequest) (*Edge, error) {
	if !adapter.IsSupportedPair(req.SrcChain, req.DstChain) {
		return nil, wrapErr(KindData, "intake.fetch_and_upsert", fmt.Errorf("%s does not support %s->%s", adapter.Name(), req.SrcChain, req.DstChain))
	}

	cacheKey := adapter.Name() + ":" + req.SrcChain + ":" + req.DstChain + ":" + req.SrcToken + ":" + req.DstToken
	var be BridgeEdge
	if in.cache != nil {
		if cached, ok := in.cache.Get(cacheKey); ok {
			be = cached
		}
	}
	if be == (BridgeEdge{}) {
		fetched, err := adapter.FetchMetrics(ctx, req)
		if err != nil {
			in.log.WithFields(logrus.Fields{"adapter": adapter.Name(), "pair": cacheKey}).WithError(err).Warn("adapter fetch failed")
			return nil, wrapErr(KindNetwork, "intake.fetch_and_upsert", err)
		}
		be = fetched
		if in.cache != nil {
			in.cache.Set(cacheKey, be)
		}
	}

	srcAsset := in.graph.GetOrCreateAssetNode(req.SrcChain, req.SrcToken, "")
	dstAsset := in.graph.GetOrCreateAssetNode(req.DstChain, req.DstToken, "")
	_ = in.graph.GetOrCreateExchangeNode(adapter.Name(), req.SrcChain)

	metrics := EdgeMetrics{Cost: be.Cost, Speed: be.Speed, Liquidity: be.Liquidity, Risk: be.Risk}

	if in.graph.UpdateEdgeMetrics(srcAsset, dstAsset, adapter.Name(), metrics) {
		in.log.WithFields(logrus.Fields{"bridge": adapter.Name(), "pair": cacheKey}).Debug("requote applied")
		edges := in.graph.GetOutgoingEdges(srcAsset)
		for _, e := range edges {
			if e.matches(srcAsset, dstAsset, adapter.Name()) {
				return e, nil
			}
		}
		return nil, nil
	}

	in.graph.AddEdge(srcAsset, dstAsset, adapter.Name(), metrics, nil, nil)
	in.log.WithFields(logrus.Fields{"id": uuid.New().String(), "bridge": adapter.Name(), "pair": cacheKey}).Info("new edge added")

	edges := in.graph.GetOutgoingEdges(srcAsset)
	for _, e := range edges {
		if e.matches(srcAsset, dstAsset, adapter.Name()) {
			return e, nil
		}
	}
	return nil, nil
}
