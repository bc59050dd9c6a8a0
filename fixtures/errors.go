package fixtures

import "errors"

// ErrTooFewVertices indicates a requested generator size is below the
// minimum the topology requires.
var ErrTooFewVertices = errors.New("fixtures: parameter too small")
