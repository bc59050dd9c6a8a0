package bellmanford

import "errors"

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to Run.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrSourceNotFound indicates the source node is not live in the graph.
	ErrSourceNotFound = errors.New("bellmanford: source node not found")

	// ErrNegativeCycle indicates a negative-weight cycle is reachable from
	// the source, making shortest distances undefined.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")
)
