// Package pipeline wires distance mapping, trimming, the double-path
// search, and Eulerian circuit extraction into a single call, retrying the
// trim-through-extraction stages when circuit extraction yields an open
// walk.
package pipeline
