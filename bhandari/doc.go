// Package bhandari finds a pair of edge-disjoint s-t paths in a weighted
// graph via Bhandari's weight-transformation technique, and unweaves the
// pair into an Eulerian-ready edge subgraph.
//
// Given a first shortest s-t path P1, the second path P2 is found by
// penalising P1's forward edges (multiplying their weight by a value large
// enough to make P1 unattractive to re-traverse) and negating the weight of
// their anti-parallel reverse edges (making "undoing" a step of P1 cheap),
// then re-running a shortest-path search that tolerates negative weights.
// The two paths are then unweaved: edges traversed in opposite directions
// by P1 and P2 cancel, leaving a subgraph where every vertex has even
// undirected degree.
package bhandari
