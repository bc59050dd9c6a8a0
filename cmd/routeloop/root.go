package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/routeloop/routeloop/graph"
	"github.com/routeloop/routeloop/ioformat"
	"github.com/routeloop/routeloop/pipeline"
)

// Exit codes, per the CLI's documented contract.
const (
	exitOK             = 0
	exitInputParse     = 1
	exitSourceNotFound = 2
	exitNoValidCircuit = 3
)

// run builds and executes the root command against args, returning the
// process exit code. cobra's own error printer is silenced; run prints the
// error on stderr itself and decides which exit code it maps to.
func run(args []string) int {
	var (
		inputPath    string
		sourceVertex int64
		targetLength float64
	)

	exitCode := exitOK

	cmd := &cobra.Command{
		Use:           "routeloop",
		Short:         "Compute a target-length circuit over a road-network graph",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, err := execute(cmd, inputPath, sourceVertex, targetLength)
			exitCode = code

			return err
		},
	}

	cmd.Flags().StringVar(&inputPath, "input-path", "", "path to a DIMACS-like text file or edge-list JSON file")
	cmd.Flags().Int64Var(&sourceVertex, "source-vertex", 0, "external id of the source vertex")
	cmd.Flags().Float64Var(&targetLength, "target-length", 0, "desired circuit length")
	_ = cmd.MarkFlagRequired("input-path")
	_ = cmd.MarkFlagRequired("source-vertex")
	_ = cmd.MarkFlagRequired("target-length")

	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "routeloop:", err)
		if exitCode == exitOK {
			exitCode = exitInputParse
		}
	}

	return exitCode
}

// execute drives the actual parse -> resolve -> pipeline.Run -> render
// sequence, returning the exit code that corresponds to the outcome.
func execute(cmd *cobra.Command, inputPath string, sourceVertex int64, targetLength float64) (int, error) {
	logger := zap.NewNop()

	g, ids, err := parseInput(inputPath)
	if err != nil {
		return exitInputParse, fmt.Errorf("parsing %s: %w", inputPath, err)
	}

	source, ok := ids.Node(sourceVertex)
	if !ok {
		return exitSourceNotFound, fmt.Errorf("source vertex %d not found in %s", sourceVertex, inputPath)
	}

	result, err := pipeline.Run(g, source, targetLength, ids, pipeline.WithLogger(logger))
	if err != nil {
		if errors.Is(err, pipeline.ErrNoValidCircuit) {
			return exitNoValidCircuit, err
		}

		return exitInputParse, err
	}

	rendered, err := json.Marshal([][]int64{result.UpperPayload, result.LowerPayload})
	if err != nil {
		return exitInputParse, fmt.Errorf("rendering result: %w", err)
	}

	outPath := solutionsPath(inputPath)
	if err := os.WriteFile(outPath, rendered, 0o644); err != nil {
		return exitInputParse, fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(rendered))

	return exitOK, nil
}

// parseInput sniffs the input format (JSON if the first non-whitespace byte
// is '[', else DIMACS) and parses accordingly.
func parseInput(path string) (*graph.Graph, *ioformat.IDMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return ioformat.ParseEdgeListJSON(bytes.NewReader(data))
	}

	return ioformat.ParseDIMACS(bytes.NewReader(data))
}

// solutionsPath derives <input-stem>_sols.txt alongside the input file.
func solutionsPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return filepath.Join(dir, stem+"_sols.txt")
}
