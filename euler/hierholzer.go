package euler

import (
	"fmt"

	"github.com/routeloop/routeloop/graph"
)

// ExtractCircuit walks h with Hierholzer's algorithm starting at start,
// returning the closed vertex sequence plus the original graph's edge IDs
// and total length for that sequence.
//
// g is the original (un-trimmed, un-penalised) graph; it supplies edge IDs
// and weights for the final circuit, since h itself carries only vertex
// pairs. Returns ErrEmptySubgraph, ErrStartNotInSubgraph, or ErrNotEulerian
// (checked on the freshly built bag, before the walk mutates it) if some
// vertex of h has odd undirected degree.
func ExtractCircuit(g *graph.Graph, h *EulerSubgraph, start graph.NodeId) (*EulerCircuit, error) {
	if h == nil || len(h.Vertices) == 0 {
		return nil, ErrEmptySubgraph
	}
	if !h.Vertices[start] {
		return nil, ErrStartNotInSubgraph
	}

	bag := buildBag(h)
	if err := checkEvenDegree(bag); err != nil {
		return nil, err
	}

	ordered := walk(bag, start)

	return render(g, ordered)
}

// buildBag constructs the undirected adjacency bag: for each (u,v) in
// h.Edges, v is appended to bag[u] and u is appended to bag[v].
func buildBag(h *EulerSubgraph) map[graph.NodeId][]graph.NodeId {
	bag := make(map[graph.NodeId][]graph.NodeId, len(h.Vertices))
	for _, e := range h.Edges {
		bag[e.From] = append(bag[e.From], e.To)
		bag[e.To] = append(bag[e.To], e.From)
	}

	return bag
}

// checkEvenDegree returns ErrNotEulerian if any vertex's bag has odd length.
func checkEvenDegree(bag map[graph.NodeId][]graph.NodeId) error {
	for v, neighbors := range bag {
		if len(neighbors)%2 != 0 {
			return fmt.Errorf("%w: vertex %d has degree %d", ErrNotEulerian, v, len(neighbors))
		}
	}

	return nil
}

// walk performs the iterative stack-based Hierholzer traversal over bag,
// consuming one matching symmetric entry per edge crossed (removed from
// both endpoints' bags via swap-remove), and returns the ordered circuit
// after reversing the emission order.
func walk(bag map[graph.NodeId][]graph.NodeId, start graph.NodeId) []graph.NodeId {
	stack := []graph.NodeId{start}
	var circuit []graph.NodeId

	for len(stack) > 0 {
		u := stack[len(stack)-1]

		if len(bag[u]) == 0 {
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]

			continue
		}

		v := popNeighbor(bag, u)
		removeSymmetric(bag, v, u)
		stack = append(stack, v)
	}

	for i, j := 0, len(circuit)-1; i < j; i, j = i+1, j-1 {
		circuit[i], circuit[j] = circuit[j], circuit[i]
	}

	return circuit
}

// popNeighbor removes and returns the last entry of bag[u] (swap-remove via
// truncation, since order within the bag does not matter to Hierholzer).
func popNeighbor(bag map[graph.NodeId][]graph.NodeId, u graph.NodeId) graph.NodeId {
	neighbors := bag[u]
	last := len(neighbors) - 1
	v := neighbors[last]
	bag[u] = neighbors[:last]

	return v
}

// removeSymmetric deletes one occurrence of target from bag[from], the
// matching half of the edge just consumed from the other endpoint.
func removeSymmetric(bag map[graph.NodeId][]graph.NodeId, from, target graph.NodeId) {
	neighbors := bag[from]
	for i, v := range neighbors {
		if v == target {
			last := len(neighbors) - 1
			neighbors[i] = neighbors[last]
			bag[from] = neighbors[:last]

			return
		}
	}
}

// render converts the ordered vertex sequence into an EulerCircuit,
// resolving each consecutive pair to an original-graph edge ID and summing
// weights.
func render(g *graph.Graph, ordered []graph.NodeId) (*EulerCircuit, error) {
	c := &EulerCircuit{Ordered: ordered}

	for i := 0; i+1 < len(ordered); i++ {
		u, v := ordered[i], ordered[i+1]

		id, ok := g.FindEdge(u, v)
		if !ok {
			id, ok = g.FindEdge(v, u)
		}
		if !ok {
			return nil, fmt.Errorf("euler: no edge between %d and %d in original graph", u, v)
		}

		w, _ := g.EdgeWeight(id)
		c.EdgeIDs = append(c.EdgeIDs, id)
		c.Length += w
	}

	return c, nil
}
