package trimmer

// Options configures a single Trim call.
type Options struct {
	Alpha float64
}

// Option is a functional option for Trim.
type Option func(*Options)

// WithAlpha overrides the ball-radius fraction of the target length used as
// the distance cutoff. Default 0.6.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

func defaultOptions() Options {
	return Options{Alpha: 0.6}
}
