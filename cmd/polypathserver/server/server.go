// Package server exposes polypath's routing facade over HTTP.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"polypath/adapters"
	"polypath/core"
	"polypath/internal/cache"
	"polypath/internal/snapshot"
	"polypath/pkg/config"
)

// Server wires a core.Router/core.Intake pair over a shared *core.Graph to
// an HTTP API, the way xchainserver/server wires its core.* helpers to
// mux routes.
type Server struct {
	router     *mux.Router
	httpServer *http.Server
	log        *logrus.Logger

	graph     *core.Graph
	routerFn  *core.Router
	intake    *core.Intake
	snapshots *snapshot.Manager
	bridges   map[string]config.BridgeConfig
	metrics   *graphMetrics
}

// Options configures a new Server.
type Options struct {
	Addr        string
	ShardCount  int
	MaxHops     int
	MaxPaths    int
	CacheSize   int
	CacheTTLSec int64
	Bridges     map[string]config.BridgeConfig
	Log         *logrus.Logger
}

// New constructs a Server ready to Start.
func New(opts Options) *Server {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	shardCount := opts.ShardCount
	if shardCount <= 0 {
		shardCount = 16
	}

	graph := core.NewGraph(shardCount)
	quoteCache := cache.New(opts.CacheSize, durationFromSeconds(opts.CacheTTLSec))
	store := snapshot.NewInMemoryStore()

	s := &Server{
		router:    mux.NewRouter(),
		log:       log,
		graph:     graph,
		routerFn:  core.NewRouter(graph, opts.MaxHops, opts.MaxPaths, log),
		intake:    core.NewIntake(graph, log, quoteCache, opts.CacheTTLSec),
		snapshots: snapshot.NewManager(store, graph, graph.NodeCount, graph.EdgeCount, log),
		bridges:   opts.Bridges,
		metrics:   newGraphMetrics(),
	}
	s.routes()
	s.httpServer = &http.Server{Addr: opts.Addr, Handler: s.router}
	return s
}

// Start blocks serving HTTP until the server errors or is shut down.
func (s *Server) Start() error { return s.httpServer.ListenAndServe() }

func (s *Server) routes() {
	s.router.Use(RequestLogger(s.log))
	s.router.Use(JSONHeaders)

	s.router.HandleFunc("/api/route", s.handleRoute).Methods(http.MethodPost)
	s.router.HandleFunc("/api/intake", s.handleIntake).Methods(http.MethodPost)
	s.router.HandleFunc("/api/graph/stats", s.handleGraphStats).Methods(http.MethodGet)
	s.router.HandleFunc("/api/graph/snapshots", s.handleGraphSnapshots).Methods(http.MethodGet)
	s.router.HandleFunc("/api/bridges", s.handleListBridges).Methods(http.MethodGet)
	s.router.Handle("/metrics", metricsHandler(s.metrics)).Methods(http.MethodGet)
}

func (s *Server) adapterFor(name string) (core.BridgeAdapter, error) {
	cfg, ok := s.bridges[name]
	if !ok {
		return nil, errUnknownBridge(name)
	}
	return adapters.New(name, cfg)
}
