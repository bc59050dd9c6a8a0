package trimmer

import "errors"

// ErrNilGraph indicates a nil *graph.Graph was passed to Trim.
var ErrNilGraph = errors.New("trimmer: graph is nil")
