package fixtures

import "github.com/routeloop/routeloop/graph"

const minCompleteNodes = 1

// Complete builds the complete graph K_n, every edge carrying weight.
// Panics if n < 1.
func Complete(n int, weight float64) *graph.Graph {
	if n < minCompleteNodes {
		panic(ErrTooFewVertices)
	}

	g := graph.NewGraph()
	ids := make([]graph.NodeId, n)
	for i := 0; i < n; i++ {
		ids[i] = g.AddNode(int64(i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			mustAddUndirected(g, ids[i], ids[j], weight)
		}
	}

	return g
}
