// Package euler extracts a closed Eulerian walk from an unweaved edge
// subgraph using Hierholzer's algorithm.
//
// The extraction works against an undirected adjacency bag derived from the
// subgraph's directed edge set (anti-parallel pairs having already cancelled
// during unweaving), walking it with a stack-based, non-recursive variant of
// Hierholzer's algorithm using a plain slice-as-stack bag (swap-remove)
// rather than a half-edge/twin-pointer representation — this module's
// subgraphs are small enough per iteration that the O(deg) swap-remove cost
// does not dominate, and the bag representation composes more directly with
// EulerSubgraph's plain edge-pair set.
package euler
