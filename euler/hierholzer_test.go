package euler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeloop/routeloop/euler"
	"github.com/routeloop/routeloop/graph"
)

func square(t *testing.T) (*graph.Graph, graph.NodeId, graph.NodeId, graph.NodeId, graph.NodeId) {
	t.Helper()
	g := graph.NewGraph()
	a := g.AddNode(0)
	b := g.AddNode(1)
	c := g.AddNode(2)
	d := g.AddNode(3)
	_, _, err := g.AddUndirectedEdge(a, b, 1)
	require.NoError(t, err)
	_, _, err = g.AddUndirectedEdge(b, c, 1)
	require.NoError(t, err)
	_, _, err = g.AddUndirectedEdge(c, d, 1)
	require.NoError(t, err)
	_, _, err = g.AddUndirectedEdge(d, a, 1)
	require.NoError(t, err)

	return g, a, b, c, d
}

func TestExtractCircuit_Square(t *testing.T) {
	g, a, b, c, d := square(t)

	h := euler.NewEulerSubgraph()
	h.AddEdge(a, b)
	h.AddEdge(b, c)
	h.AddEdge(c, d)
	h.AddEdge(d, a)

	circuit, err := euler.ExtractCircuit(g, h, a)
	require.NoError(t, err)
	require.Equal(t, a, circuit.Ordered[0])
	require.Equal(t, a, circuit.Ordered[len(circuit.Ordered)-1])
	require.Len(t, circuit.Ordered, 5)
	require.Equal(t, 4.0, circuit.Length)
	require.Len(t, circuit.EdgeIDs, 4)
}

func TestExtractCircuit_OddDegreeIsNotEulerian(t *testing.T) {
	g, a, b, c, _ := square(t)

	h := euler.NewEulerSubgraph()
	h.AddEdge(a, b)
	h.AddEdge(b, c)

	_, err := euler.ExtractCircuit(g, h, a)
	require.ErrorIs(t, err, euler.ErrNotEulerian)
}

func TestExtractCircuit_EmptySubgraph(t *testing.T) {
	g, a, _, _, _ := square(t)

	_, err := euler.ExtractCircuit(g, euler.NewEulerSubgraph(), a)
	require.ErrorIs(t, err, euler.ErrEmptySubgraph)
}

func TestExtractCircuit_StartNotInSubgraph(t *testing.T) {
	g, a, b, c, d := square(t)

	h := euler.NewEulerSubgraph()
	h.AddEdge(b, c)
	h.AddEdge(c, d)
	h.AddEdge(d, b)

	_, err := euler.ExtractCircuit(g, h, a)
	require.ErrorIs(t, err, euler.ErrStartNotInSubgraph)
}

func TestEulerSubgraph_RemoveEdgeRemovesDirectedPairOnce(t *testing.T) {
	h := euler.NewEulerSubgraph()
	h.AddEdge(1, 2)
	require.True(t, h.HasEdge(1, 2))

	removed := h.RemoveEdge(1, 2)
	require.True(t, removed)
	require.False(t, h.HasEdge(1, 2))

	require.False(t, h.RemoveEdge(1, 2))
}
