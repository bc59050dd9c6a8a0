// Package bellmanford implements the Bellman-Ford-Moore shortest-path
// algorithm over a graph.Graph, tolerating negative edge weights as long as
// no negative cycle is reachable from the source.
//
// This is the shortest-path search bhandari re-runs on its scratch graph
// once a path's edges have been forward-penalised and reverse-negated: the
// sign inversion on reused edges means distmap's non-negative-only Dijkstra
// can no longer be used for that step.
//
// Complexity:
//
//   - Time:  O(V*E) — |V|-1 relaxation passes over every live edge, plus one
//     more pass to detect a negative cycle.
//   - Space: O(V) for the distance and predecessor maps.
package bellmanford
