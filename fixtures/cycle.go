package fixtures

import "github.com/routeloop/routeloop/graph"

const minCycleNodes = 3

// Cycle builds an n-vertex simple cycle C_n, every edge carrying weight.
// Panics if n < 3.
func Cycle(n int, weight float64) *graph.Graph {
	if n < minCycleNodes {
		panic(ErrTooFewVertices)
	}

	g := graph.NewGraph()
	ids := make([]graph.NodeId, n)
	for i := 0; i < n; i++ {
		ids[i] = g.AddNode(int64(i))
	}
	for i := 0; i < n; i++ {
		mustAddUndirected(g, ids[i], ids[(i+1)%n], weight)
	}

	return g
}
