// Package distmap implements Dijkstra's shortest-path algorithm over a
// graph.Graph with non-negative edge weights, producing a DistanceMap and
// a PredecessorMap from a single source.
//
// It runs once, before trimming, to decide which vertices fall inside the
// 0.6*L ball the trimmer keeps.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each vertex is extracted from the heap at
//     most once; each edge relaxation may push a new heap entry.
//   - Space: O(V + E) — O(V) for the distance/predecessor maps, O(E)
//     worst-case heap entries under the lazy-decrease-key discipline used
//     here (duplicate pushes, stale pops dropped via a visited set).
package distmap
