package bhandari

import (
	"github.com/routeloop/routeloop/euler"
	"github.com/routeloop/routeloop/graph"
)

// UnweavePaths combines p1 and p2 into an *euler.EulerSubgraph: every
// consecutive pair of p1 is inserted as a directed edge; for each
// consecutive pair (u,v) of p2, if the anti-parallel (v,u) is already
// present (p1 and p2 crossed the same undirected edge in opposite
// directions), it is cancelled instead of inserted. Vertices is the set of
// endpoints of the edges that remain. The result gives every vertex even
// undirected degree, the precondition euler.ExtractCircuit requires.
func UnweavePaths(p1, p2 *Path) *euler.EulerSubgraph {
	h := euler.NewEulerSubgraph()

	for i := 0; i+1 < len(p1.Vertices); i++ {
		h.AddEdge(p1.Vertices[i], p1.Vertices[i+1])
	}

	for i := 0; i+1 < len(p2.Vertices); i++ {
		u, v := p2.Vertices[i], p2.Vertices[i+1]
		if h.HasEdge(v, u) {
			h.RemoveEdge(v, u)

			continue
		}
		h.AddEdge(u, v)
	}

	h.Vertices = make(map[graph.NodeId]bool, len(h.Vertices))
	for _, e := range h.Edges {
		h.Vertices[e.From] = true
		h.Vertices[e.To] = true
	}

	return h
}
