package pipeline

import (
	"errors"

	"go.uber.org/zap"

	"github.com/routeloop/routeloop/distmap"
	"github.com/routeloop/routeloop/doublepath"
	"github.com/routeloop/routeloop/euler"
	"github.com/routeloop/routeloop/graph"
	"github.com/routeloop/routeloop/ioformat"
	"github.com/routeloop/routeloop/trimmer"
)

// Run wires distance mapping, trimming, the double-path search, and
// Eulerian circuit extraction for g starting at source toward targetLength,
// rendering the resulting bracket circuits back to external-id payload
// sequences via ids.
//
// If circuit extraction for a bracket yields an open walk — ErrNotEulerian,
// or defensively a closed walk whose first and last vertex differ, which
// should never occur once euler's contract holds — the whole trim-through-
// extraction pipeline is retried up to the configured attempt budget.
// ErrNoDisjointPath from bhandari is already swallowed inside
// doublepath.Search and never reaches this layer. All other errors
// propagate immediately.
func Run(g *graph.Graph, source graph.NodeId, targetLength float64, ids *ioformat.IDMap, opts ...Option) (*Result, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	dist, _, err := distmap.Dijkstra(g, source)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		RG, err := trimmer.Trim(g, dist, targetLength, trimmer.WithAlpha(cfg.Alpha))
		if err != nil {
			return nil, err
		}

		lowerH, upperH, err := doublepath.Search(source, RG, targetLength, doublepath.WithLogger(log))
		if err != nil {
			return nil, err
		}

		lowerCircuit, lowerRetry, err := extractIfPresent(g, lowerH, source)
		if err != nil {
			return nil, err
		}
		upperCircuit, upperRetry, err := extractIfPresent(g, upperH, source)
		if err != nil {
			return nil, err
		}

		if lowerRetry || upperRetry {
			log.Debug("pipeline: retrying after open walk", zap.Int("attempt", attempt))

			continue
		}

		return buildResult(lowerCircuit, upperCircuit, ids), nil
	}

	return nil, ErrNoValidCircuit
}

// extractIfPresent extracts h into a circuit when non-nil. Returns
// retry=true only when h was present but extraction yielded an open walk
// (ErrNotEulerian, or defensively a closed walk whose endpoints differ) —
// that attempt's trim-through-extraction pipeline should be retried
// wholesale. A nil h (that bracket was simply never established by the
// double-path search) is not an error and not retried: it surfaces as a nil
// circuit in the final Result.
func extractIfPresent(g *graph.Graph, h *euler.EulerSubgraph, source graph.NodeId) (circuit *euler.EulerCircuit, retry bool, err error) {
	if h == nil {
		return nil, false, nil
	}

	circuit, err = euler.ExtractCircuit(g, h, source)
	if err != nil {
		if errors.Is(err, euler.ErrNotEulerian) {
			return nil, true, nil
		}

		return nil, false, err
	}

	if len(circuit.Ordered) == 0 || circuit.Ordered[0] != circuit.Ordered[len(circuit.Ordered)-1] {
		return nil, true, nil
	}

	return circuit, false, nil
}

// buildResult renders both circuits' node sequences to external-id payload
// sequences via ids. When ids is nil the payload fields are left nil.
func buildResult(lower, upper *euler.EulerCircuit, ids *ioformat.IDMap) *Result {
	r := &Result{Lower: lower, Upper: upper}
	if ids == nil {
		return r
	}

	r.LowerPayload = renderPayload(lower, ids)
	r.UpperPayload = renderPayload(upper, ids)

	return r
}

func renderPayload(c *euler.EulerCircuit, ids *ioformat.IDMap) []int64 {
	if c == nil {
		return nil
	}

	out := make([]int64, 0, len(c.Ordered))
	for _, v := range c.Ordered {
		external, ok := ids.External(v)
		if !ok {
			continue
		}
		out = append(out, external)
	}

	return out
}
