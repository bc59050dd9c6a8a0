package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeloop/routeloop/fixtures"
	"github.com/routeloop/routeloop/pipeline"
)

func TestRun_SquareProducesUpperBound(t *testing.T) {
	g := fixtures.Cycle(4, 1)

	// alpha=1 keeps the whole 4-cycle: the default 0.6 cutoff (1.8) would
	// trim the vertex opposite the source (distance 2).
	result, err := pipeline.Run(g, 0, 3, nil, pipeline.WithAlpha(1))
	require.NoError(t, err)
	require.NotNil(t, result.Upper)
	require.Equal(t, 4.0, result.Upper.Length)
	require.Equal(t, 0, int(result.Upper.Ordered[0]))
	require.Equal(t, result.Upper.Ordered[0], result.Upper.Ordered[len(result.Upper.Ordered)-1])
}

func TestRun_NilIDMapSkipsPayloadRendering(t *testing.T) {
	g := fixtures.Cycle(4, 1)

	result, err := pipeline.Run(g, 0, 3, nil)
	require.NoError(t, err)
	require.Nil(t, result.UpperPayload)
}
