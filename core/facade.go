package core

import (
	"github.com/sirupsen/logrus"
)

// RouteIntent is the caller-facing request: move amount of from_token on
// from_chain to to_token on to_chain, optimizing for preference.
type RouteIntent struct {
	FromChain  string
	FromToken  string
	ToChain    string
	ToToken    string
	Amount     float64
	Preference string
}

// Router is the front-door request handler: it derives RoutingParams from
// the intent's preference, resolves endpoint NodeIDs (creating asset nodes
// lazily if they don't exist yet), asks the routing engine for candidate
// paths, and returns them normalized, optimized and ranked.
type Router struct {
	graph    *Graph
	engine   *RoutingEngine
	scoring  *ScoringEngine
	maxPaths int
	log      *logrus.Logger
}

// NewRouter constructs a Router over graph, searching at most maxHops edges
// deep and considering at most maxPaths candidate paths per request.
func NewRouter(graph *Graph, maxHops, maxPaths int, log *logrus.Logger) *Router {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Router{
		graph:    graph,
		engine:   NewRoutingEngine(graph, maxHops),
		scoring:  NewScoringEngine(),
		maxPaths: maxPaths,
		log:      log,
	}
}

// Route resolves intent into a ranked list of paths. An intent with no
// reachable path yields an empty, non-nil-panicking slice rather than an
// error — absence is represented structurally, the same way
// RoutingEngine.FindPath returns nil for "no path".
func (r *Router) Route(intent RouteIntent, maxResults int) []RankedPath {
	params := ParamsForPreference(intent.Preference)

	start := r.graph.GetOrCreateAssetNode(intent.FromChain, intent.FromToken, "")
	end := r.graph.GetOrCreateAssetNode(intent.ToChain, intent.ToToken, "")

	r.log.WithFields(logrus.Fields{
		"from": intent.FromChain + ":" + intent.FromToken,
		"to":   intent.ToChain + ":" + intent.ToToken,
		"pref": intent.Preference,
	}).Info("routing request")

	paths := r.engine.FindCandidatePaths(start, end, params, r.maxPaths)
	ranked := r.scoring.ScoreAndRank(paths, params, maxResults)

	r.log.WithFields(logrus.Fields{"candidates": len(paths), "ranked": len(ranked)}).Debug("routing result")
	return ranked
}
