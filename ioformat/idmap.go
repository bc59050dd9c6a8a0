package ioformat

import "github.com/routeloop/routeloop/graph"

// IDMap bidirectionally maps external int64 vertex identifiers to the
// internal graph.NodeId handles a parser allocated for them, used both to
// resolve a user-supplied --source-vertex and to render an output circuit's
// node sequence back to external identifiers.
type IDMap struct {
	toNode     map[int64]graph.NodeId
	toExternal map[graph.NodeId]int64
}

// NewIDMap returns an empty IDMap.
func NewIDMap() *IDMap {
	return &IDMap{
		toNode:     make(map[int64]graph.NodeId),
		toExternal: make(map[graph.NodeId]int64),
	}
}

// Register records the association between an external id and the node
// allocated for it. Overwrites any prior association for the same external
// id (first-seen mapping is the caller's responsibility to preserve).
func (m *IDMap) Register(external int64, node graph.NodeId) {
	m.toNode[external] = node
	m.toExternal[node] = external
}

// Node resolves an external id to its graph.NodeId.
func (m *IDMap) Node(external int64) (graph.NodeId, bool) {
	n, ok := m.toNode[external]

	return n, ok
}

// External resolves a graph.NodeId back to its external id.
func (m *IDMap) External(node graph.NodeId) (int64, bool) {
	e, ok := m.toExternal[node]

	return e, ok
}

// Len returns the number of registered vertices.
func (m *IDMap) Len() int {
	return len(m.toNode)
}
