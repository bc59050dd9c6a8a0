package bhandari

import (
	"math"

	"github.com/routeloop/routeloop/graph"
)

// Path is an ordered s-t walk [v0=s, ..., vk=t] together with its total
// weight under whichever graph it was computed.
type Path struct {
	Vertices []graph.NodeId
	Length   float64
}

// BhandariGraph pairs a graph with the penalty constant used to transform
// path weights during the second-path search. INF2 is a strict upper bound
// on any single path's total weight in Graph, so that multiplying one edge
// by INF2 always makes reusing it (forward) more expensive than any route
// that avoids it.
type BhandariGraph struct {
	Graph *graph.Graph
	INF2  float64
}

// NewBhandariGraph computes INF2 = floor(sum of live edge weights / 2) + 1
// over g and pairs it with g.
func NewBhandariGraph(g *graph.Graph) *BhandariGraph {
	return &BhandariGraph{
		Graph: g,
		INF2:  math.Floor(g.SumWeights()/2) + 1,
	}
}
