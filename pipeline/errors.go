package pipeline

import "errors"

// ErrNoValidCircuit indicates every retry attempt's Euler extraction failed
// (open walk or ErrNotEulerian) before a valid closed circuit was produced.
var ErrNoValidCircuit = errors.New("pipeline: no valid circuit found within attempt budget")
