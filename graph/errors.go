package graph

import "errors"

// Sentinel errors returned by Graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrNegativeWeight indicates a caller tried to add an edge with a
	// negative weight through AddEdge/AddUndirectedEdge. Callers needing a
	// negative weight (bhandari's reverse-negation step) use
	// AddEdgeUnchecked instead.
	ErrNegativeWeight = errors.New("graph: negative edge weight")
)
