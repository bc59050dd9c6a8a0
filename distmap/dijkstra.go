package distmap

import (
	"container/heap"
	"fmt"

	"github.com/routeloop/routeloop/graph"
)

// Dijkstra computes shortest distances from source to every node reachable
// in g, returning a DistanceMap and a PredecessorMap (always populated —
// the double-path search needs the predecessor tree to invert into a
// successor map, so the predecessor map is never optional here).
//
// Preconditions, validated in order:
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source as a live node (ErrSourceNotFound).
//  3. No live edge in g may have a negative weight (ErrNegativeWeight).
func Dijkstra(g *graph.Graph, source graph.NodeId, opts ...Option) (DistanceMap, PredecessorMap, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, nil, ErrSourceNotFound
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, id := range g.Nodes() {
		neighbors, err := g.Neighbors(id)
		if err != nil {
			return nil, nil, fmt.Errorf("distmap: %w", err)
		}
		for _, e := range neighbors {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d->%d weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(DistanceMap),
		prev:    make(PredecessorMap),
		visited: make(map[graph.NodeId]bool),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state of a single Dijkstra execution.
type runner struct {
	g       *graph.Graph
	options Options
	dist    DistanceMap
	prev    PredecessorMap
	visited map[graph.NodeId]bool
	pq      nodePQ
}

// init seeds the heap with the source at distance 0.
func (r *runner) init(source graph.NodeId) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process repeatedly extracts the minimum-distance node and relaxes its
// out-edges, using a lazy-decrease-key heap: stale entries (for a node
// already visited) are dropped on pop rather than removed in place.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines u's out-edges and improves distances to its neighbors.
func (r *runner) relax(u graph.NodeId) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("distmap: failed to get neighbors of %d: %w", u, err)
	}

	for _, e := range neighbors {
		v, w := e.To, e.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}

		cur, known := r.dist[v]
		if known && newDist >= cur {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem pairs a node with its current tentative distance, for the heap.
type nodeItem struct {
	id   graph.NodeId
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending distance.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
