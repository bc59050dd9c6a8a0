package doublepath

import (
	"container/heap"
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/routeloop/routeloop/bellmanford"
	"github.com/routeloop/routeloop/bhandari"
	"github.com/routeloop/routeloop/euler"
	"github.com/routeloop/routeloop/graph"
)

// Search iterates candidate turnaround vertices t in decreasing order of
// distance from source, driving bhandari's edge-disjoint path-pair search
// at each candidate and maintaining a pair of bracketing bounds around
// targetLength. A bound that is never established is returned as nil,
// without an error (the caller — pipeline — treats a still-nil bound as
// "not found"); both are nil if neither is established. Returns
// ErrBellmanFordFailed if the initial shortest-path search from source
// reports a negative cycle.
func Search(source graph.NodeId, RG *bhandari.BhandariGraph, targetLength float64, opts ...Option) (lower, upper *euler.EulerSubgraph, err error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	dist, prev, err := bellmanford.Run(RG.Graph, source)
	if err != nil {
		if errors.Is(err, bellmanford.ErrNegativeCycle) {
			return nil, nil, ErrBellmanFordFailed
		}

		return nil, nil, err
	}

	successors := buildSuccessors(prev)

	pq := make(tHeap, 0, len(dist))
	for v, d := range dist {
		pq = append(pq, &tItem{id: v, dist: d})
	}
	heap.Init(&pq)

	failedNodes := make(map[graph.NodeId]bool)
	lowerLen := math.Inf(-1)
	upperLen := math.Inf(1)
	visited := 0

	for pq.Len() > 0 {
		if cfg.MaxIterations > 0 && visited >= cfg.MaxIterations {
			log.Debug("doublepath: iteration cap reached", zap.Int("max_iterations", cfg.MaxIterations))

			break
		}

		item := heap.Pop(&pq).(*tItem)
		t := item.id
		visited++

		if failedNodes[t] {
			continue
		}

		p1 := &bhandari.Path{Vertices: reconstructPathFromPrev(prev, source, t), Length: item.dist}
		if len(p1.Vertices) < 2 {
			continue
		}

		p2, err := bhandari.GetEdgeDisjointPath(RG, source, t, p1)
		if err != nil {
			if errors.Is(err, bhandari.ErrNoDisjointPath) {
				log.Debug("doublepath: no disjoint path for candidate", zap.Int("t", int(t)))

				continue
			}

			return nil, nil, err
		}

		h := bhandari.UnweavePaths(p1, p2)
		h.Length = sumEdgeWeights(RG.Graph, h)

		switch {
		case h.Length < targetLength:
			for _, v := range failedNodesFromVertices(h) {
				failedNodes[v] = true
			}
			if h.Length > lowerLen {
				lowerLen = h.Length
				lower = h
				log.Debug("doublepath: lower bound updated", zap.Float64("length", h.Length), zap.Int("t", int(t)))
			}
		case h.Length < upperLen:
			upperLen = h.Length
			upper = h
			log.Debug("doublepath: upper bound updated", zap.Float64("length", h.Length), zap.Int("t", int(t)))

			for _, v := range collectSubtree(successors, t) {
				failedNodes[v] = true
			}
		}

		if lower != nil && upper != nil && lowerLen == upperLen {
			break
		}
	}

	return lower, upper, nil
}

// reconstructPathFromPrev walks prev backward from t to source.
func reconstructPathFromPrev(prev map[graph.NodeId]graph.NodeId, source, t graph.NodeId) []graph.NodeId {
	var reversed []graph.NodeId
	cur := t
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

// sumEdgeWeights totals the weight of every edge in h as found in g, trying
// the anti-parallel (v,u) lookup when (u,v) is absent (the directed-
// duplication representation means either direction may be the stored one).
func sumEdgeWeights(g *graph.Graph, h *euler.EulerSubgraph) float64 {
	var total float64
	for _, e := range h.Edges {
		if id, ok := g.FindEdge(e.From, e.To); ok {
			w, _ := g.EdgeWeight(id)
			total += w

			continue
		}
		if id, ok := g.FindEdge(e.To, e.From); ok {
			w, _ := g.EdgeWeight(id)
			total += w
		}
	}

	return total
}

// failedNodesFromVertices returns every vertex incident to h, the full
// prune applied when a candidate yields a too-short circuit.
func failedNodesFromVertices(h *euler.EulerSubgraph) []graph.NodeId {
	out := make([]graph.NodeId, 0, len(h.Vertices))
	for v := range h.Vertices {
		out = append(out, v)
	}

	return out
}
