package bellmanford

import (
	"github.com/routeloop/routeloop/distmap"
	"github.com/routeloop/routeloop/graph"
)

// Run computes shortest distances from source over g using the Bellman-Ford-
// Moore relaxation loop, tolerating negative edge weights. This is the search
// bhandari re-runs on its scratch graph after forward-penalising a path's
// edges and negating their reverse duplicates, where Dijkstra's
// non-negative-weight precondition no longer holds.
//
// Returns ErrNilGraph, ErrSourceNotFound under the same conditions as
// distmap.Dijkstra, or ErrNegativeCycle if a cycle reachable from source can
// still be relaxed after |V|-1 passes.
func Run(g *graph.Graph, source graph.NodeId) (distmap.DistanceMap, distmap.PredecessorMap, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, nil, ErrSourceNotFound
	}

	nodes := g.Nodes()
	dist := make(distmap.DistanceMap)
	prev := make(distmap.PredecessorMap)
	dist[source] = 0

	// |V|-1 relaxation passes suffice to propagate a shortest path of at
	// most |V|-1 edges; an early-exit flag skips the remainder once a full
	// pass makes no improvement.
	for i := 0; i < len(nodes)-1; i++ {
		improved := false
		for _, u := range nodes {
			du, ok := dist[u]
			if !ok {
				continue
			}
			neighbors, err := g.Neighbors(u)
			if err != nil {
				return nil, nil, err
			}
			for _, e := range neighbors {
				cand := du + e.Weight
				if cur, known := dist[e.To]; !known || cand < cur {
					dist[e.To] = cand
					prev[e.To] = u
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	// One more pass: if any reachable edge can still be relaxed, a negative
	// cycle is reachable from source.
	for _, u := range nodes {
		du, ok := dist[u]
		if !ok {
			continue
		}
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, nil, err
		}
		for _, e := range neighbors {
			if cur, known := dist[e.To]; !known || du+e.Weight < cur {
				return nil, nil, ErrNegativeCycle
			}
		}
	}

	return dist, prev, nil
}
