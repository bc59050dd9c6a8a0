// Package graph provides the in-memory directed graph used by the rest of
// routeloop: a small-integer-handle node/edge table, guarded by two
// sync.RWMutex locks, supporting the directed-duplication representation of
// an undirected weighted road network.
//
// A Graph never compacts: removing a node tombstones it and its incident
// edges rather than reusing the slot, so NodeId/EdgeId values stay stable
// across the lifetime of a single Graph instance. This matters downstream —
// Bhandari's algorithm clones a Graph on every candidate turnaround vertex
// and relies on edge identity surviving the clone.
//
// Weights are float64. That is the narrowest standard numeric type that is
// ordered, additive, negatable and safely multiplicative by the INF2 penalty
// bhandari computes; callers with edge weights approaching float64's
// exponent range should rescale their inputs before trimming (see
// trimmer.Trim's documented precondition).
package graph
