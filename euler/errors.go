package euler

import "errors"

// Sentinel errors returned by ExtractCircuit.
var (
	// ErrEmptySubgraph indicates H has no vertices to start a walk from.
	ErrEmptySubgraph = errors.New("euler: subgraph has no vertices")

	// ErrStartNotInSubgraph indicates the requested start vertex is not
	// incident to any edge of H.
	ErrStartNotInSubgraph = errors.New("euler: start vertex not in subgraph")

	// ErrNotEulerian indicates some vertex of H has odd undirected degree,
	// so no closed walk traversing every edge exactly once can exist.
	ErrNotEulerian = errors.New("euler: subgraph has a vertex of odd degree")
)
