// Package engine implements network exploration over an in-memory graph:
// depth- and degree-bounded traversal with pluggable filters, progressive
// (best-first and random-walk) exploration, subgraph extraction, and
// multi-entity network discovery.
//
// Every call is a pure, synchronous computation over a graph the caller
// owns for the duration of the call. The engine never mutates the graph,
// never logs, and never performs I/O; irregular but structurally sound
// input resolves to empty results rather than errors.
package engine

import "errors"

// Sentinel errors surfaced to callers. Everything else resolves to an
// empty result.
var (
	// ErrUnknownStartNode reports a start or query entity absent from the
	// graph. Never silently treated as an empty result.
	ErrUnknownStartNode = errors.New("unknown start node")

	// ErrInsufficientQueryEntities reports a discovery request with fewer
	// than two query entities.
	ErrInsufficientQueryEntities = errors.New("discovery requires at least two query entities")

	// ErrInvalidBound reports a negative depth or a non-positive node or
	// hop cap.
	ErrInvalidBound = errors.New("invalid traversal bound")
)
