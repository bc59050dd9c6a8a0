// Package doublepath implements the outer search loop that iterates
// candidate turnaround vertices in order of decreasing distance from the
// source, drives bhandari's edge-disjoint path-pair search at each
// candidate, and maintains a pair of running bracketing bounds around a
// target circuit length.
package doublepath
