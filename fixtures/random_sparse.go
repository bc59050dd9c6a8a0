package fixtures

import (
	"math/rand"

	"github.com/routeloop/routeloop/graph"
)

const minRandomSparseNodes = 1

// RandomSparse builds a connected random graph over n vertices: a
// Hamiltonian path (0-1-2-...-n-1) guaranteeing connectivity, plus up to
// extraEdges additional random undirected edges: extraEdges vertex pairs are
// drawn uniformly, and a draw that hits a self-pair or an already-connected
// pair adds nothing. All edges carry weight. Deterministic for a fixed seed.
// Panics if n < 1.
func RandomSparse(n, extraEdges int, seed int64, weight float64) *graph.Graph {
	if n < minRandomSparseNodes {
		panic(ErrTooFewVertices)
	}

	g := graph.NewGraph()
	ids := make([]graph.NodeId, n)
	for i := 0; i < n; i++ {
		ids[i] = g.AddNode(int64(i))
	}
	for i := 0; i+1 < n; i++ {
		mustAddUndirected(g, ids[i], ids[i+1], weight)
	}

	if n < 2 {
		return g
	}

	rng := rand.New(rand.NewSource(seed))
	for added := 0; added < extraEdges; added++ {
		u := rng.Intn(n)
		v := rng.Intn(n)
		if u == v {
			continue
		}
		if _, ok := g.FindEdge(ids[u], ids[v]); ok {
			continue
		}
		mustAddUndirected(g, ids[u], ids[v], weight)
	}

	return g
}
