package doublepath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeloop/routeloop/bhandari"
	"github.com/routeloop/routeloop/doublepath"
	"github.com/routeloop/routeloop/graph"
)

func diamond(t *testing.T) (*graph.Graph, graph.NodeId) {
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

	return g, a
}

func TestSearch_DiamondFindsUpperBound(t *testing.T) {
	g, a := diamond(t)
	RG := bhandari.NewBhandariGraph(g)

	lower, upper, err := doublepath.Search(a, RG, 3)
	require.NoError(t, err)
	require.Nil(t, lower, "every candidate in a 4-cycle unweaves to the same length-4 circuit, never below target 3")
	require.NotNil(t, upper)
	require.Equal(t, 4.0, upper.Length)
}

func TestSearch_MaxIterationsStopsEarly(t *testing.T) {
	g, a := diamond(t)
	RG := bhandari.NewBhandariGraph(g)

	_, _, err := doublepath.Search(a, RG, 3, doublepath.WithMaxIterations(1))
	require.NoError(t, err)
}
