package pipeline

import (
	"go.uber.org/zap"

	"github.com/routeloop/routeloop/euler"
)

// defaultMaxAttempts bounds the retry loop: a circuit extraction that keeps
// yielding an open walk is retried up to this many times before pipeline
// gives up.
const defaultMaxAttempts = 50

// Options configures a single Run call.
type Options struct {
	MaxAttempts int
	Alpha       float64
	Logger      *zap.Logger
}

// Option is a functional option for Run.
type Option func(*Options)

// WithMaxAttempts overrides the retry budget. Default 50.
func WithMaxAttempts(n int) Option {
	return func(o *Options) { o.MaxAttempts = n }
}

// WithAlpha overrides the trimmer ball-radius fraction threaded down into
// trimmer.Trim on every attempt. Default 0.6.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithLogger installs a structured logger threaded down into
// doublepath.Search. Nil-safe: omitting this option leaves the default
// zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

func defaultOptions() Options {
	return Options{MaxAttempts: defaultMaxAttempts, Alpha: 0.6, Logger: zap.NewNop()}
}

// Result holds the bracketing circuits Run found, both as the extracted
// *euler.EulerCircuit (nil if that bound was never established) and as the
// corresponding external-id payload sequences.
type Result struct {
	Lower        *euler.EulerCircuit
	Upper        *euler.EulerCircuit
	LowerPayload []int64
	UpperPayload []int64
}
