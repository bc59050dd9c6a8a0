package trimmer

import (
	"github.com/routeloop/routeloop/bhandari"
	"github.com/routeloop/routeloop/distmap"
	"github.com/routeloop/routeloop/graph"
)

// Trim clones g and removes every vertex v with d(v) > alpha*targetLength
// (d taken from a prior distmap.Dijkstra run from the intended source, and
// unreachable vertices — absent from d — are removed unconditionally), then
// wraps the surviving subgraph in a *bhandari.BhandariGraph whose INF2 is
// computed over the trimmed edge set.
//
// Precondition: the sum of trimmed-graph edge weights, multiplied by INF2
// again inside bhandari's forward-penalty step, must stay within float64's
// representable range — rescale inputs first if edge weights approach 1e150.
func Trim(g *graph.Graph, d distmap.DistanceMap, targetLength float64, opts ...Option) (*bhandari.BhandariGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	maxDist := cfg.Alpha * targetLength

	scratch := g.Clone()
	for _, v := range scratch.Nodes() {
		dist, reachable := d[v]
		if !reachable || dist > maxDist {
			_ = scratch.RemoveNode(v)
		}
	}

	return bhandari.NewBhandariGraph(scratch), nil
}
