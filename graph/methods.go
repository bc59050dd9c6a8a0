package graph

// AddNode appends a new node carrying the given external payload weight and
// returns its NodeId. Complexity: O(1) amortized.
func (g *Graph) AddNode(weight int64) NodeId {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	id := NodeId(len(g.nodes))
	g.nodes = append(g.nodes, node{weight: weight})

	return id
}

// NodeWeight returns the external payload for id and whether id is a live
// (non-removed, in-range) node.
func (g *Graph) NodeWeight(id NodeId) (int64, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	if !g.liveNodeLocked(id) {
		return 0, false
	}

	return g.nodes[id].weight, true
}

// HasNode reports whether id names a live node.
func (g *Graph) HasNode(id NodeId) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return g.liveNodeLocked(id)
}

// liveNodeLocked requires muNodes to be held (read or write).
func (g *Graph) liveNodeLocked(id NodeId) bool {
	return id >= 0 && int(id) < len(g.nodes) && !g.nodes[id].removed
}

// Nodes returns the live NodeId values in ascending order.
func (g *Graph) Nodes() []NodeId {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	out := make([]NodeId, 0, len(g.nodes))
	for i := range g.nodes {
		if !g.nodes[i].removed {
			out = append(out, NodeId(i))
		}
	}

	return out
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	n := 0
	for i := range g.nodes {
		if !g.nodes[i].removed {
			n++
		}
	}

	return n
}

// AddEdge adds a single directed edge u->v with the given non-negative
// weight and returns its EdgeId. Returns ErrNodeNotFound if either endpoint
// is not a live node, or ErrNegativeWeight if w < 0.
func (g *Graph) AddEdge(u, v NodeId, w float64) (EdgeId, error) {
	if w < 0 {
		return -1, ErrNegativeWeight
	}

	g.muNodes.RLock()
	ok := g.liveNodeLocked(u) && g.liveNodeLocked(v)
	g.muNodes.RUnlock()
	if !ok {
		return -1, ErrNodeNotFound
	}

	return g.addEdgeRaw(u, v, w), nil
}

// AddEdgeUnchecked adds a directed edge without rejecting a negative weight.
// It still requires both endpoints to be live nodes. This exists for
// bhandari's scratch-graph weight transformation (forward penalty, reverse
// negation), which must install negative weights that AddEdge would refuse;
// no other caller in this module should reach for it.
func (g *Graph) AddEdgeUnchecked(u, v NodeId, w float64) (EdgeId, error) {
	g.muNodes.RLock()
	ok := g.liveNodeLocked(u) && g.liveNodeLocked(v)
	g.muNodes.RUnlock()
	if !ok {
		return -1, ErrNodeNotFound
	}

	return g.addEdgeRaw(u, v, w), nil
}

// addEdgeRaw adds a directed edge without validating endpoints or weight
// sign.
func (g *Graph) addEdgeRaw(u, v NodeId, w float64) EdgeId {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	id := EdgeId(len(g.edges))
	g.edges = append(g.edges, edge{id: id, from: u, to: v, weight: w})
	g.out[u] = append(g.out[u], id)

	return id
}

// AddUndirectedEdge adds the pair of anti-parallel directed edges (u->v,w)
// and (v->u,w) that represent a single undirected edge of the source road
// network.
func (g *Graph) AddUndirectedEdge(u, v NodeId, w float64) (EdgeId, EdgeId, error) {
	fwd, err := g.AddEdge(u, v, w)
	if err != nil {
		return -1, -1, err
	}
	rev, err := g.AddEdge(v, u, w)
	if err != nil {
		return -1, -1, err
	}

	return fwd, rev, nil
}

// RemoveNode removes id and every edge incident to it (as source or
// destination). Returns ErrNodeNotFound if id is not live.
// Complexity: O(deg(id) + E) — the edge table is scanned once to catch
// edges for which id is the destination.
func (g *Graph) RemoveNode(id NodeId) error {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	if !g.liveNodeLocked(id) {
		return ErrNodeNotFound
	}
	g.nodes[id].removed = true

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	for i := range g.edges {
		e := &g.edges[i]
		if e.removed {
			continue
		}
		if e.from == id || e.to == id {
			e.removed = true
		}
	}
	delete(g.out, id)

	return nil
}

// liveEdgeLocked reports whether id refers to an edge that is in range and not
// tombstoned. Requires muEdges to be held.
func (g *Graph) liveEdgeLocked(id EdgeId) bool {
	return id >= 0 && int(id) < len(g.edges) && !g.edges[id].removed
}

// EdgeWeight returns the weight of edge id and whether id is live.
func (g *Graph) EdgeWeight(id EdgeId) (float64, bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	if !g.liveEdgeLocked(id) {
		return 0, false
	}

	return g.edges[id].weight, true
}

// Endpoints returns the (from, to) of edge id and whether id is live.
func (g *Graph) Endpoints(id EdgeId) (NodeId, NodeId, bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	if !g.liveEdgeLocked(id) {
		return -1, -1, false
	}

	return g.edges[id].from, g.edges[id].to, true
}

// Neighbors returns the live out-edges of u in insertion order. Returns
// ErrNodeNotFound if u is not a live node.
func (g *Graph) Neighbors(u NodeId) ([]Edge, error) {
	g.muNodes.RLock()
	live := g.liveNodeLocked(u)
	g.muNodes.RUnlock()
	if !live {
		return nil, ErrNodeNotFound
	}

	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	ids := g.out[u]
	out := make([]Edge, 0, len(ids))
	for _, id := range ids {
		e := g.edges[id]
		if e.removed {
			continue
		}
		out = append(out, Edge{ID: e.id, From: e.from, To: e.to, Weight: e.weight})
	}

	return out, nil
}

// FindEdge returns the id of a live directed edge u->v, if any. Multi-edges
// resolve to the first match in insertion order.
func (g *Graph) FindEdge(u, v NodeId) (EdgeId, bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	for _, id := range g.out[u] {
		e := g.edges[id]
		if !e.removed && e.to == v {
			return id, true
		}
	}

	return -1, false
}

// RemoveEdge tombstones edge id. Returns ErrEdgeNotFound if id is not live.
func (g *Graph) RemoveEdge(id EdgeId) error {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	if !g.liveEdgeLocked(id) {
		return ErrEdgeNotFound
	}
	g.edges[id].removed = true

	return nil
}

// SumWeights returns the sum of every live edge's weight.
func (g *Graph) SumWeights() float64 {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	var sum float64
	for i := range g.edges {
		if !g.edges[i].removed {
			sum += g.edges[i].weight
		}
	}

	return sum
}

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	n := 0
	for i := range g.edges {
		if !g.edges[i].removed {
			n++
		}
	}

	return n
}
