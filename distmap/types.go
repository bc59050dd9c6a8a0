package distmap

import (
	"errors"
	"math"

	"github.com/routeloop/routeloop/graph"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("distmap: graph is nil")

	// ErrSourceNotFound indicates the source node is not live in the graph.
	ErrSourceNotFound = errors.New("distmap: source node not found")

	// ErrNegativeWeight indicates a negative edge weight was found during
	// the pre-scan; Dijkstra requires non-negative weights.
	ErrNegativeWeight = errors.New("distmap: negative edge weight encountered")
)

// DistanceMap maps a reachable node to its shortest-path distance from the
// source. Unreachable nodes have no entry.
type DistanceMap map[graph.NodeId]float64

// PredecessorMap maps a node (other than the source) to its predecessor on
// the shortest-path tree rooted at the source.
type PredecessorMap map[graph.NodeId]graph.NodeId

// Options configures a single Dijkstra run.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// WithMaxDistance caps exploration: nodes whose shortest distance would
// exceed max are not relaxed further. Default math.Inf(1) (no cap).
func WithMaxDistance(max float64) Option {
	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold treats edges with weight >= threshold as impassable.
// Default math.Inf(1) (no edge is impassable).
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

func defaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
