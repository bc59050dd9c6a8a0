package doublepath

import "errors"

// ErrBellmanFordFailed indicates the initial Bellman-Ford run from source
// reported a negative cycle, which should not occur on the non-negative
// input this package expects but is handled defensively rather than
// panicking.
var ErrBellmanFordFailed = errors.New("doublepath: initial shortest-path search failed")
