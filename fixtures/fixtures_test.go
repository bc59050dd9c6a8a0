package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeloop/routeloop/fixtures"
)

func TestGrid_NodeAndEdgeCounts(t *testing.T) {
	g := fixtures.Grid(3, 4, 1)
	require.Equal(t, 12, g.NodeCount())
	// interior edges: horizontal (cols-1)*rows + vertical (rows-1)*cols, *2 for undirected duplication.
	require.Equal(t, 2*((4-1)*3+(3-1)*4), g.EdgeCount())
}

func TestGrid_PanicsOnTooSmall(t *testing.T) {
	require.Panics(t, func() { fixtures.Grid(0, 4, 1) })
}

func TestCycle_NodeAndEdgeCounts(t *testing.T) {
	g := fixtures.Cycle(5, 2)
	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, 10, g.EdgeCount())
	require.Equal(t, 20.0, g.SumWeights())
}

func TestCycle_PanicsBelowMinimum(t *testing.T) {
	require.Panics(t, func() { fixtures.Cycle(2, 1) })
}

func TestComplete_NodeAndEdgeCounts(t *testing.T) {
	g := fixtures.Complete(5, 1)
	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, 2*(5*4/2), g.EdgeCount())
}

func TestRandomSparse_ConnectedAndDeterministic(t *testing.T) {
	g1 := fixtures.RandomSparse(10, 5, 42, 1)
	g2 := fixtures.RandomSparse(10, 5, 42, 1)
	require.Equal(t, g1.EdgeCount(), g2.EdgeCount())

	reachable, err := g1.Reachable(0)
	require.NoError(t, err)
	require.Len(t, reachable, 10)
}
