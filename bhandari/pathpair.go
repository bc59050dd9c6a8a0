package bhandari

import (
	"math"

	"github.com/routeloop/routeloop/bellmanford"
	"github.com/routeloop/routeloop/graph"
)

// GetEdgeDisjointPath produces a second source-target Path for p1, by
// forward-penalising p1's edges and negating their anti-parallel reverse
// duplicates on a scratch clone of RG.Graph, then re-running a
// negative-weight-tolerant shortest-path search from source. The penalised
// forward edges stay in the scratch graph, so when every route to target
// crosses one of them the returned path reuses that edge; Length is the
// search's distance to target modulo RG.INF2.
//
// Returns ErrNilGraph if RG or RG.Graph is nil, ErrEmptyPath if p1 has fewer
// than two vertices, ErrNoDisjointPath if no path reaches target, or
// bellmanford.ErrNegativeCycle if the penalised graph contains a negative
// cycle reachable from source.
func GetEdgeDisjointPath(RG *BhandariGraph, source, target graph.NodeId, p1 *Path) (*Path, error) {
	if RG == nil || RG.Graph == nil {
		return nil, ErrNilGraph
	}
	if p1 == nil || len(p1.Vertices) < 2 {
		return nil, ErrEmptyPath
	}

	g2 := RG.Graph.Clone()
	applyWeightTransform(g2, p1, RG.INF2)

	dist, prev, err := bellmanford.Run(g2, source)
	if err != nil {
		return nil, err
	}

	d, reached := dist[target]
	if !reached {
		return nil, ErrNoDisjointPath
	}

	vertices := reconstructPath(prev, source, target)
	if vertices == nil {
		return nil, ErrNoDisjointPath
	}

	return &Path{Vertices: vertices, Length: math.Mod(d, RG.INF2)}, nil
}

// applyWeightTransform penalises p1's forward edges and negates their
// anti-parallel reverse edges in place on g2. For each consecutive pair
// (u,v): the u->v edge (if present) is removed and re-added with weight
// w*inf2; the v->u edge (if present) is removed and re-added with weight
// -w'.
func applyWeightTransform(g2 *graph.Graph, p1 *Path, inf2 float64) {
	for i := 0; i+1 < len(p1.Vertices); i++ {
		u, v := p1.Vertices[i], p1.Vertices[i+1]

		if id, ok := g2.FindEdge(u, v); ok {
			w, _ := g2.EdgeWeight(id)
			_ = g2.RemoveEdge(id)
			_, _ = g2.AddEdgeUnchecked(u, v, w*inf2)
		}

		if id, ok := g2.FindEdge(v, u); ok {
			w, _ := g2.EdgeWeight(id)
			_ = g2.RemoveEdge(id)
			_, _ = g2.AddEdgeUnchecked(v, u, -w)
		}
	}
}

// reconstructPath walks prev backward from target to source, returning the
// vertex sequence in forward order, or nil if source is unreachable by
// following predecessors from target.
func reconstructPath(prev map[graph.NodeId]graph.NodeId, source, target graph.NodeId) []graph.NodeId {
	var reversed []graph.NodeId
	cur := target
	reversed = append(reversed, cur)

	for cur != source {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		cur = p
		reversed = append(reversed, cur)
	}

	out := make([]graph.NodeId, len(reversed))
	for i, v := range reversed {
		out[len(reversed)-1-i] = v
	}

	return out
}
