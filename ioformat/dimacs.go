package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/routeloop/routeloop/graph"
)

// ParseDIMACS decodes a DIMACS-like text stream into a *graph.Graph and an
// IDMap. The first line (a header) is ignored. A "v <id> ..." line declares
// a vertex with external payload <id> (an int64); the k-th v line, 0-
// indexed, allocates the k-th graph.NodeId. An "e <u> <v> <w>" line
// declares an undirected edge between the vertices carrying external
// payloads u and v, with non-negative weight w (a float64), installed via
// graph.AddUndirectedEdge. Any other line prefix is ignored. A malformed
// numeric field returns ErrInputParse wrapping the originating strconv
// error and the 1-indexed source line.
func ParseDIMACS(r io.Reader) (*graph.Graph, *IDMap, error) {
	g := graph.NewGraph()
	ids := NewIDMap()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	sawHeader := false

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !sawHeader {
			sawHeader = true

			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 2 {
				continue
			}
			external, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrInputParse, lineNo, err)
			}
			node := g.AddNode(external)
			ids.Register(external, node)

		case "e":
			if len(fields) < 4 {
				continue
			}
			uExt, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrInputParse, lineNo, err)
			}
			vExt, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrInputParse, lineNo, err)
			}
			w, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrInputParse, lineNo, err)
			}

			u, ok := ids.Node(uExt)
			if !ok {
				return nil, nil, fmt.Errorf("%w: line %d: edge references unknown vertex %d", ErrInputParse, lineNo, uExt)
			}
			v, ok := ids.Node(vExt)
			if !ok {
				return nil, nil, fmt.Errorf("%w: line %d: edge references unknown vertex %d", ErrInputParse, lineNo, vExt)
			}

			if _, _, err := g.AddUndirectedEdge(u, v, w); err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrInputParse, lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInputParse, err)
	}

	return g, ids, nil
}
