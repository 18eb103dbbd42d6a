package core

import "github.com/cespare/xxhash/v2"

// NodeID is an opaque, stable identifier for a graph node. It is derived by
// hashing a category tag together with an identifier string, so equal inputs
// always produce equal IDs across processes and restarts — required for
// get-or-create idempotence and for callers that cache NodeIDs out of
// process (e.g. a CLI storing a route's endpoints between invocations).
//
// Go's built-in map/string hashing is seeded per-process and therefore
// unusable here; xxhash.Sum64 is deterministic and already part of the
// dependency graph (pulled in transitively by go-ethereum in the teacher
// repo), so it is promoted to a direct dependency instead of reaching for
// hash/fnv.
//
// Collisions are treated as identity: two distinct (tag, id) pairs that hash
// to the same 64-bit value are indistinguishable to the graph. This is a
// documented limitation (spec open question), not a bug; widening to a
// 128-bit ID or adding an explicit collision-check map is left as future
// work.
type NodeID uint64

// NewNodeID derives a NodeID from a category tag and an identifier string.
func NewNodeID(tag, identifier string) NodeID {
	h := xxhash.New()
	_, _ = h.WriteString(tag)
	_, _ = h.WriteString(identifier)
	return NodeID(h.Sum64())
}

// assetNodeID derives the identity key for an Asset node: ("chain", tokenAddress).
func assetNodeID(chain, tokenAddress string) NodeID {
	return NewNodeID(chain, tokenAddress)
}

// exchangeNodeID derives the identity key for an Exchange node: ("exchange", "name:chain").
func exchangeNodeID(name, chain string) NodeID {
	return NewNodeID("exchange", name+":"+chain)
}
