package euler

import "github.com/routeloop/routeloop/graph"

// EdgePair is an ordered pair of adjacent vertices, the unit EulerSubgraph
// stores its directed edges in.
type EdgePair struct {
	From, To graph.NodeId
}

// EulerSubgraph H is the unweaved edge set produced by bhandari: the union
// of two edge-disjoint s-t paths with anti-parallel traversals cancelled.
// Every vertex of H must have even undirected degree for ExtractCircuit to
// succeed.
type EulerSubgraph struct {
	Edges    []EdgePair
	Vertices map[graph.NodeId]bool
	Length   float64
}

// NewEulerSubgraph returns an empty subgraph ready to accept edges.
func NewEulerSubgraph() *EulerSubgraph {
	return &EulerSubgraph{Vertices: make(map[graph.NodeId]bool)}
}

// AddEdge inserts the directed pair (u,v), recording both endpoints as
// incident vertices.
func (h *EulerSubgraph) AddEdge(u, v graph.NodeId) {
	h.Edges = append(h.Edges, EdgePair{From: u, To: v})
	h.Vertices[u] = true
	h.Vertices[v] = true
}

// RemoveEdge removes the first occurrence of the directed pair (u,v) and
// reports whether one was found. It does not prune vertices left with zero
// incident edges; bhandari.UnweavePaths rebuilds Vertices from the remaining
// edges once its cancellations are done.
func (h *EulerSubgraph) RemoveEdge(u, v graph.NodeId) bool {
	for i, e := range h.Edges {
		if e.From == u && e.To == v {
			h.Edges = append(h.Edges[:i], h.Edges[i+1:]...)

			return true
		}
	}

	return false
}

// HasEdge reports whether the directed pair (u,v) is present in H.
func (h *EulerSubgraph) HasEdge(u, v graph.NodeId) bool {
	for _, e := range h.Edges {
		if e.From == u && e.To == v {
			return true
		}
	}

	return false
}

// EulerCircuit is the ordered closed walk extracted from an EulerSubgraph.
type EulerCircuit struct {
	// Ordered is the vertex sequence, with Ordered[0] == Ordered[last].
	Ordered []graph.NodeId
	// EdgeIDs are the original graph's edge identifiers for each consecutive
	// pair of Ordered, looked up via the (v,u) fallback where (u,v) is
	// absent (the directed-duplication representation of an undirected
	// edge means either direction may be the one actually stored).
	EdgeIDs []graph.EdgeId
	Length  float64
}
