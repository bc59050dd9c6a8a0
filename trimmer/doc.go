// Package trimmer restricts a graph to the ball of vertices within a given
// distance of a source, and computes the resulting subgraph's Bhandari
// penalty constant INF2.
//
// Searching the double-path outer loop over the whole graph wastes budget
// on turnaround candidates whose round trip could never approach the target
// length; trimming to a 0.6L-radius ball bounds any s-t-s round trip to
// roughly 1.2L while still preserving enough candidates to bracket L.
package trimmer
