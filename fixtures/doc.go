// Package fixtures provides deterministic graph generators used by example
// and property tests: Grid, Cycle, Complete, and RandomSparse.
//
// It keeps to the road-network-shaped generators a routing system's test
// suite actually exercises; decorative generators for candlestick/OHLC
// series, chirp sweeps, and platonic-solid or letter shapes have no consumer
// here and are not carried over.
package fixtures
