package bhandari

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrNilGraph indicates a nil *BhandariGraph or *graph.Graph was passed.
	ErrNilGraph = errors.New("bhandari: graph is nil")

	// ErrEmptyPath indicates a zero-length Path was passed where a
	// non-empty s-t path was required.
	ErrEmptyPath = errors.New("bhandari: path has no vertices")

	// ErrNoDisjointPath indicates the penalised re-search found no second
	// s-t path.
	ErrNoDisjointPath = errors.New("bhandari: no edge-disjoint second path found")
)
