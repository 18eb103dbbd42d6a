package server

import "github.com/prometheus/client_golang/prometheus"

// graphMetrics mirrors the node's system_health_logging gauge set, scaled
// down to the three numbers that matter for a routing graph: its size and
// its mutation counter.
type graphMetrics struct {
	registry   *prometheus.Registry
	nodeGauge  prometheus.Gauge
	edgeGauge  prometheus.Gauge
	versionGauge prometheus.Gauge
	routeCounter prometheus.Counter
}

func newGraphMetrics() *graphMetrics {
	reg := prometheus.NewRegistry()
	m := &graphMetrics{
		registry: reg,
		nodeGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "polypath_graph_nodes",
			Help: "Current number of nodes in the routing graph",
		}),
		edgeGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "polypath_graph_edges",
			Help: "Current number of active edges in the routing graph",
		}),
		versionGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "polypath_graph_version",
			Help: "Monotonic mutation counter of the routing graph",
		}),
		routeCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "polypath_route_requests_total",
			Help: "Total number of /api/route requests served",
		}),
	}
	reg.MustRegister(m.nodeGauge, m.edgeGauge, m.versionGauge, m.routeCounter)
	return m
}

func (m *graphMetrics) observe(nodeCount, edgeCount int, version uint64) {
	m.nodeGauge.Set(float64(nodeCount))
	m.edgeGauge.Set(float64(edgeCount))
	m.versionGauge.Set(float64(version))
}
