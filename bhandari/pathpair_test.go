package bhandari_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/routeloop/routeloop/bhandari"
	"github.com/routeloop/routeloop/graph"
)

// diamond builds a 4-cycle a-b-c-d-a (undirected, unit weight) so that the
// shortest a-c path via b has an edge-disjoint twin via d.
func diamond(t *testing.T) (*graph.Graph, graph.NodeId, graph.NodeId, graph.NodeId, graph.NodeId) {
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

func TestGetEdgeDisjointPath_Diamond(t *testing.T) {
	g, a, b, c, d := diamond(t)
	RG := bhandari.NewBhandariGraph(g)

	p1 := &bhandari.Path{Vertices: []graph.NodeId{a, b, c}, Length: 2}

	p2, err := bhandari.GetEdgeDisjointPath(RG, a, c, p1)
	require.NoError(t, err)
	require.Equal(t, a, p2.Vertices[0])
	require.Equal(t, c, p2.Vertices[len(p2.Vertices)-1])
	if diff := cmp.Diff([]graph.NodeId{a, d, c}, p2.Vertices); diff != "" {
		t.Errorf("p2.Vertices mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 2.0, p2.Length)
}

func TestGetEdgeDisjointPath_NilGraph(t *testing.T) {
	_, err := bhandari.GetEdgeDisjointPath(nil, 0, 1, &bhandari.Path{Vertices: []graph.NodeId{0, 1}})
	require.ErrorIs(t, err, bhandari.ErrNilGraph)
}

func TestGetEdgeDisjointPath_EmptyPath(t *testing.T) {
	g, a, _, c, _ := diamond(t)
	RG := bhandari.NewBhandariGraph(g)

	_, err := bhandari.GetEdgeDisjointPath(RG, a, c, &bhandari.Path{})
	require.ErrorIs(t, err, bhandari.ErrEmptyPath)
}

func TestGetEdgeDisjointPath_NoSecondPath(t *testing.T) {
	// c has no incident edges at all: no weight transformation of p1 can
	// make it reachable.
	g := graph.NewGraph()
	a := g.AddNode(0)
	b := g.AddNode(1)
	c := g.AddNode(2)
	_, _, err := g.AddUndirectedEdge(a, b, 1)
	require.NoError(t, err)
	RG := bhandari.NewBhandariGraph(g)

	p1 := &bhandari.Path{Vertices: []graph.NodeId{a, b}, Length: 1}
	_, err = bhandari.GetEdgeDisjointPath(RG, a, c, p1)
	require.ErrorIs(t, err, bhandari.ErrNoDisjointPath)
}

func TestUnweavePaths_DiamondCancelsNothing(t *testing.T) {
	_, a, b, c, d := diamond(t)
	p1 := &bhandari.Path{Vertices: []graph.NodeId{a, b, c}}
	p2 := &bhandari.Path{Vertices: []graph.NodeId{a, d, c}}

	h := bhandari.UnweavePaths(p1, p2)
	require.True(t, h.HasEdge(a, b))
	require.True(t, h.HasEdge(b, c))
	require.True(t, h.HasEdge(a, d))
	require.True(t, h.HasEdge(d, c))
	require.Len(t, h.Edges, 4)
}

func TestUnweavePaths_CancelsAntiParallelOverlap(t *testing.T) {
	var a, b, c, d graph.NodeId = 0, 1, 2, 3
	p1 := &bhandari.Path{Vertices: []graph.NodeId{a, b, c}}
	// p2 retraces c->b, the reverse of p1's b->c step: it should cancel
	// rather than appear as a separate edge, then continue on to d.
	p2 := &bhandari.Path{Vertices: []graph.NodeId{c, b, d}}

	h := bhandari.UnweavePaths(p1, p2)
	require.True(t, h.HasEdge(a, b))
	require.False(t, h.HasEdge(b, c))
	require.False(t, h.HasEdge(c, b))
	require.True(t, h.HasEdge(b, d))
}
