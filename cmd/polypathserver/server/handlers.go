package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"polypath/core"
)

type routeRequest struct {
	FromChain  string  `json:"from_chain"`
	FromToken  string  `json:"from_token"`
	ToChain    string  `json:"to_chain"`
	ToToken    string  `json:"to_token"`
	Amount     float64 `json:"amount"`
	Preference string  `json:"preference"`
	MaxResults int     `json:"max_results"`
}

// handleRoute resolves a routeRequest into a ranked list of paths via
// core.Router.Route, never failing with an HTTP error for "no path" — an
// empty ranked list is a normal, 200 OK response, matching the facade's
// own "empty, not error" contract for unreachable pairs.
func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	ranked := s.routerFn.Route(core.RouteIntent{
		FromChain:  req.FromChain,
		FromToken:  req.FromToken,
		ToChain:    req.ToChain,
		ToToken:    req.ToToken,
		Amount:     req.Amount,
		Preference: req.Preference,
	}, maxResults)

	s.metrics.routeCounter.Inc()
	s.metrics.observe(s.graph.NodeCount(), s.graph.EdgeCount(), s.graph.Version())
	writeJSON(w, ranked)
}

type intakeRequest struct {
	Bridge       string `json:"bridge"`
	SrcChain     string `json:"src_chain"`
	DstChain     string `json:"dst_chain"`
	SrcToken     string `json:"src_token"`
	DstToken     string `json:"dst_token"`
	SrcAmount    string `json:"src_amount"`
	DstAmountMin string `json:"dst_amount_min"`
}

// handleIntake fetches a live quote from the named bridge adapter and
// upserts it into the shared graph. Adapter errors (unsupported pair,
// network failure, malformed response) surface verbatim as the response
// body, per the facade's error-propagation contract for intake-triggered
// requests.
func (s *Server) handleIntake(w http.ResponseWriter, r *http.Request) {
	var req intakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	adapter, err := s.adapterFor(req.Bridge)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	edge, err := s.intake.FetchAndUpsert(r.Context(), adapter, core.QuoteRequest{
		SrcChain: req.SrcChain, DstChain: req.DstChain,
		SrcToken: req.SrcToken, DstToken: req.DstToken,
		SrcAmount: req.SrcAmount, DstAmountMin: req.DstAmountMin,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	if _, err := s.snapshots.Capture(); err != nil {
		s.log.WithError(err).Warn("snapshot capture failed")
	}

	writeJSON(w, struct {
		Bridge  string           `json:"bridge"`
		Metrics core.EdgeMetrics `json:"metrics"`
	}{Bridge: edge.BridgeName, Metrics: edge.GetMetrics()})
}

func (s *Server) handleGraphStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, struct {
		Version   uint64 `json:"version"`
		NodeCount int    `json:"node_count"`
		EdgeCount int    `json:"edge_count"`
	}{Version: s.graph.Version(), NodeCount: s.graph.NodeCount(), EdgeCount: s.graph.EdgeCount()})
}

func (s *Server) handleGraphSnapshots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.snapshots.History())
}

func (s *Server) handleListBridges(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.bridges)
}

func metricsHandler(m *graphMetrics) http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func durationFromSeconds(sec int64) time.Duration {
	if sec <= 0 {
		return 0
	}
	return time.Duration(sec) * time.Second
}

func errUnknownBridge(name string) error {
	return fmt.Errorf("server: no bridge configured under name %q", name)
}
