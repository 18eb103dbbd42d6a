package core

import "fmt"

// Kind is the error taxonomy callers can switch on without string matching:
// config loading, adapter networking, malformed upstream data, the optional
// cache/persistence side services, and the graph. The core package only
// ever raises NetworkError/DataError, both from Intake: DataError for a
// chain pair the adapter does not support, NetworkError for any adapter
// FetchMetrics failure (adapters themselves return plain errors); GraphError
// is reserved (the graph itself never fails — missing nodes are created
// lazily, failed updates return false, not an error) and
// CacheError/PersistenceError are reserved for the side services in
// internal/cache and internal/snapshot.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindConfig
	KindNetwork
	KindData
	KindCache
	KindPersistence
	KindGraph
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindNetwork:
		return "network"
	case KindData:
		return "data"
	case KindCache:
		return "cache"
	case KindPersistence:
		return "persistence"
	case KindGraph:
		return "graph"
	default:
		return "unknown"
	}
}

// Error is a taxonomy-tagged, wrapped error. Op names the failing operation
// (e.g. "adapter.fetch_metrics", "intake.upsert_edge") for log correlation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// wrapErr builds an *Error, or returns nil if err is nil — mirroring
// pkg/utils.Wrap's nil-passthrough contract.
func wrapErr(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}
