package distmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeloop/routeloop/distmap"
	"github.com/routeloop/routeloop/graph"
)

func triangle(t *testing.T) (*graph.Graph, graph.NodeId, graph.NodeId, graph.NodeId) {
	t.Helper()
	g := graph.NewGraph()
	a := g.AddNode(0)
	b := g.AddNode(1)
	c := g.AddNode(2)
	_, _, err := g.AddUndirectedEdge(a, b, 1)
	require.NoError(t, err)
	_, _, err = g.AddUndirectedEdge(b, c, 1)
	require.NoError(t, err)
	_, _, err = g.AddUndirectedEdge(a, c, 1)
	require.NoError(t, err)

	return g, a, b, c
}

func TestDijkstra_Triangle(t *testing.T) {
	g, a, b, c := triangle(t)

	dist, prev, err := distmap.Dijkstra(g, a)
	require.NoError(t, err)
	require.Equal(t, 0.0, dist[a])
	require.Equal(t, 1.0, dist[b])
	require.Equal(t, 1.0, dist[c])
	require.Equal(t, a, prev[b])
	require.Equal(t, a, prev[c])
}

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := distmap.Dijkstra(nil, 0)
	require.ErrorIs(t, err, distmap.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := graph.NewGraph()
	g.AddNode(1)

	_, _, err := distmap.Dijkstra(g, graph.NodeId(99))
	require.ErrorIs(t, err, distmap.ErrSourceNotFound)
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddNode(0)
	b := g.AddNode(1)
	// AddEdge itself rejects negative weights; simulate the graph bhandari's
	// scratch-weight transformation produces, which legitimately bypasses
	// that guard via AddEdgeUnchecked.
	_, err := g.AddEdgeUnchecked(a, b, -1)
	require.NoError(t, err)

	_, _, err = distmap.Dijkstra(g, a)
	require.ErrorIs(t, err, distmap.ErrNegativeWeight)
}

func TestDijkstra_DisconnectedVertexUnreachable(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddNode(0)
	isolated := g.AddNode(1)

	dist, _, err := distmap.Dijkstra(g, a)
	require.NoError(t, err)
	_, ok := dist[isolated]
	require.False(t, ok)
}

func TestDijkstra_MaxDistanceStopsExploration(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddNode(0)
	b := g.AddNode(1)
	c := g.AddNode(2)
	_, _, err := g.AddUndirectedEdge(a, b, 5)
	require.NoError(t, err)
	_, _, err = g.AddUndirectedEdge(b, c, 5)
	require.NoError(t, err)

	dist, _, err := distmap.Dijkstra(g, a, distmap.WithMaxDistance(5))
	require.NoError(t, err)
	require.Equal(t, 5.0, dist[b])
	_, ok := dist[c]
	require.False(t, ok, "c is at distance 10, beyond MaxDistance=5")
}

func TestDijkstra_InfEdgeThresholdSkipsEdge(t *testing.T) {
	g := graph.NewGraph()
	x := g.AddNode(0)
	y := g.AddNode(1)
	_, _, err := g.AddUndirectedEdge(x, y, 1000)
	require.NoError(t, err)

	dist, _, err := distmap.Dijkstra(g, x, distmap.WithInfEdgeThreshold(100))
	require.NoError(t, err)
	_, ok := dist[y]
	require.False(t, ok)
}
