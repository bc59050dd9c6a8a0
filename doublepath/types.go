package doublepath

import "go.uber.org/zap"

// Options configures a single Search call.
type Options struct {
	// MaxIterations caps the number of candidate turnaround vertices popped
	// from the heap before Search stops short of exhaustion, bounding the
	// vertex-visitation budget. 0 means unbounded (stop only on heap
	// exhaustion or bracket equality).
	MaxIterations int
	Logger        *zap.Logger
}

// Option is a functional option for Search.
type Option func(*Options)

// WithMaxIterations caps the number of candidates Search visits.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithLogger installs a structured logger for iteration diagnostics
// (candidates visited, disjoint-path failures, bracket updates). Nil-safe:
// omitting this option leaves the default zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

func defaultOptions() Options {
	return Options{MaxIterations: 0, Logger: zap.NewNop()}
}
