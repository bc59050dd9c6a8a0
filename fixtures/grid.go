package fixtures

import "github.com/routeloop/routeloop/graph"

const minGridDim = 1

// Grid builds a rows x cols orthogonal grid with 4-neighborhood (right and
// bottom neighbors per cell), every edge carrying weight. Vertex payloads
// are the row-major index r*cols+c. Panics if rows or cols is below 1 —
// fixtures are test-only call sites where a malformed literal is a program
// bug, not recoverable input.
func Grid(rows, cols int, weight float64) *graph.Graph {
	if rows < minGridDim || cols < minGridDim {
		panic(ErrTooFewVertices)
	}

	g := graph.NewGraph()
	ids := make([][]graph.NodeId, rows)
	for r := 0; r < rows; r++ {
		ids[r] = make([]graph.NodeId, cols)
		for c := 0; c < cols; c++ {
			ids[r][c] = g.AddNode(int64(r*cols + c))
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				mustAddUndirected(g, ids[r][c], ids[r][c+1], weight)
			}
			if r+1 < rows {
				mustAddUndirected(g, ids[r][c], ids[r+1][c], weight)
			}
		}
	}

	return g
}

func mustAddUndirected(g *graph.Graph, u, v graph.NodeId, w float64) {
	if _, _, err := g.AddUndirectedEdge(u, v, w); err != nil {
		panic(err)
	}
}
