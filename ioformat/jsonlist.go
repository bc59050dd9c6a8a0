package ioformat

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/routeloop/routeloop/graph"
)

// jsonEdge mirrors one entry of an edge-list JSON document.
type jsonEdge struct {
	EdgeID    int64   `json:"EdgeID"`
	StartNode int64   `json:"StartNode"`
	EndNode   int64   `json:"EndNode"`
	Weight    float64 `json:"Weight"`
}

// ParseEdgeListJSON decodes a JSON array of {EdgeID, StartNode, EndNode,
// Weight} objects into a *graph.Graph and an IDMap. Vertices are discovered
// as the union of StartNode/EndNode values across all entries, indexed in
// first-seen order; EdgeID is accepted for input-format fidelity but is not
// otherwise used (the internal graph assigns its own EdgeId on insertion).
//
// encoding/json (stdlib) is used here rather than a third-party decoder: see
// DESIGN.md for why no pack dependency fits this batch-decode-once workload.
func ParseEdgeListJSON(r io.Reader) (*graph.Graph, *IDMap, error) {
	var edges []jsonEdge
	if err := json.NewDecoder(r).Decode(&edges); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInputParse, err)
	}

	g := graph.NewGraph()
	ids := NewIDMap()

	resolve := func(external int64) graph.NodeId {
		if node, ok := ids.Node(external); ok {
			return node
		}
		node := g.AddNode(external)
		ids.Register(external, node)

		return node
	}

	for i, e := range edges {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: entry %d: negative weight %v", ErrInputParse, i, e.Weight)
		}

		u := resolve(e.StartNode)
		v := resolve(e.EndNode)
		if _, _, err := g.AddUndirectedEdge(u, v, e.Weight); err != nil {
			return nil, nil, fmt.Errorf("%w: entry %d: %v", ErrInputParse, i, err)
		}
	}

	return g, ids, nil
}
