// Package ioformat decodes road-network inputs — a DIMACS-like text format
// and an edge-list JSON format — into a *graph.Graph plus an IDMap
// recording the external vertex identifiers each graph.NodeId stands for.
package ioformat
