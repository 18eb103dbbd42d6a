package snapshot

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

const keyPrefix = "graph:snapshot:"
const latestKey = "graph:snapshot:latest"

// GraphSnapshot is a point-in-time summary of the routing graph's size.
// Intake batches call Manager.Capture after an AddEdge/UpdateEdgeMetrics
// run so operators can chart growth without walking the live graph.
type GraphSnapshot struct {
	Version   uint64    `json:"version"`
	NodeCount int       `json:"node_count"`
	EdgeCount int       `json:"edge_count"`
	TakenAt   time.Time `json:"taken_at"`
}

// graphStats is the narrow view Manager needs from *core.Graph, kept as an
// interface so this package doesn't import core (same one-way-dependency
// discipline as core/intake.go's quoteCache).
type graphStats interface {
	Version() uint64
}

// Manager captures and persists GraphSnapshots through a Store.
type Manager struct {
	store      Store
	log        *logrus.Logger
	nodeCount  func() int
	edgeCount  func() int
	graphStats graphStats
}

// NewManager constructs a Manager. nodeCount and edgeCount are callbacks the
// caller supplies (typically closures over a *core.Graph's own counting
// helpers) so this package never needs to import core's node/edge types.
func NewManager(store Store, graph graphStats, nodeCount, edgeCount func() int, log *logrus.Logger) *Manager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Manager{store: store, graphStats: graph, nodeCount: nodeCount, edgeCount: edgeCount, log: log}
}

// Capture builds a GraphSnapshot from the current graph state, persists it
// both under a version-keyed key (history) and under the latest-key, and
// returns it. Persistence failures are logged and returned, never silently
// swallowed — the caller decides whether a snapshot failure should block
// the intake batch that triggered it.
func (m *Manager) Capture() (GraphSnapshot, error) {
	snap := GraphSnapshot{
		Version:   m.graphStats.Version(),
		NodeCount: m.nodeCount(),
		EdgeCount: m.edgeCount(),
		TakenAt:   time.Now().UTC(),
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return snap, fmt.Errorf("snapshot: marshal: %w", err)
	}

	versionedKey := fmt.Sprintf("%s%020d", keyPrefix, snap.Version)
	if err := m.store.Set([]byte(versionedKey), payload); err != nil {
		return snap, fmt.Errorf("snapshot: persist versioned: %w", err)
	}
	if err := m.store.Set([]byte(latestKey), payload); err != nil {
		return snap, fmt.Errorf("snapshot: persist latest: %w", err)
	}

	m.log.WithFields(logrus.Fields{
		"version": snap.Version,
		"nodes":   snap.NodeCount,
		"edges":   snap.EdgeCount,
	}).Debug("graph snapshot captured")
	return snap, nil
}

// Latest returns the most recently captured snapshot, if any.
func (m *Manager) Latest() (GraphSnapshot, bool) {
	payload, err := m.store.Get([]byte(latestKey))
	if err != nil {
		return GraphSnapshot{}, false
	}
	var snap GraphSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return GraphSnapshot{}, false
	}
	return snap, true
}

// History returns every captured snapshot in ascending version order.
func (m *Manager) History() []GraphSnapshot {
	it := m.store.Iterator([]byte(keyPrefix), []byte(latestKey))
	var out []GraphSnapshot
	defer it.Close()
	for it.Next() {
		var snap GraphSnapshot
		if err := json.Unmarshal(it.Value(), &snap); err != nil {
			continue
		}
		out = append(out, snap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out
}
