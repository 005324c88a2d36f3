// Package main implements rsmtctl, the CLI driving smt.Instance over the
// benchmark/solution XML documents of spec.md §6: two positional arguments
// (input path, output path), exit codes 0 success / 1 wrong argument count
// or parse failure / 2 malformed benchmark.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rsmtlab/rsmt/internal/rsmtlog"
	"github.com/rsmtlab/rsmt/netxml"
	"github.com/rsmtlab/rsmt/pinset"
	"github.com/rsmtlab/rsmt/smt"
)

// errMalformedBenchmark marks a failure that should exit 2 rather than 1:
// the input file parsed as XML but its content violates smt's invariants
// (an out-of-range pin coordinate, mainly).
var errMalformedBenchmark = errors.New("rsmtctl: malformed benchmark")

var (
	verbose bool
	fixture string
)

var rootCmd = &cobra.Command{
	Use:          "rsmtctl <input.xml> <output.xml>",
	Short:        "Build a rectilinear Steiner minimal tree from a benchmark net",
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runBuild,
}

func init() {
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "emit structured build-phase logging")
	rootCmd.Flags().StringVar(&fixture, "fixture", "", `use a built-in pin set instead of reading <input.xml> (only "smoke" is defined)`)
}

func runBuild(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]
	logger := rsmtlog.New(verbose)
	defer logger.Sync() //nolint:errcheck // best-effort flush on process exit

	var net *netxml.Net
	if fixture != "" {
		n, err := fixtureNet(fixture)
		if err != nil {
			return fmt.Errorf("%w: %v", errMalformedBenchmark, err)
		}
		net = n
	} else {
		in, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("rsmtctl: opening input: %w", err)
		}
		defer in.Close()

		n, err := netxml.ReadNet(in, logger)
		if err != nil {
			return fmt.Errorf("rsmtctl: parsing %q: %w", inputPath, err)
		}
		net = n
	}
	logger.Info("parsed net", zap.String("path", inputPath), zap.Int("grid_size", net.GridSize), zap.Int("pin_count", len(net.Points)))

	inst := smt.New(net.GridSize, net.PinCount)
	for _, pin := range net.Pins() {
		if err := inst.AddPin(pin[0], pin[1]); err != nil {
			return fmt.Errorf("%w: %v", errMalformedBenchmark, err)
		}
	}

	start := time.Now()
	length, err := inst.Build()
	if err != nil {
		return fmt.Errorf("%w: %v", errMalformedBenchmark, err)
	}
	elapsed := time.Since(start)
	logger.Info("built tree", zap.Int("length", length), zap.Duration("elapsed", elapsed))

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("rsmtctl: creating output: %w", err)
	}
	defer out.Close()

	if err := netxml.WriteSolution(out, net.GridSize, net.PinCount, inst.Points(), inst.Edges()); err != nil {
		return fmt.Errorf("rsmtctl: writing %q: %w", outputPath, err)
	}
	logger.Info("wrote solution", zap.String("path", outputPath))

	return nil
}

// fixtureNet builds a netxml.Net from a built-in pinset generator instead of
// reading <input.xml>. Only "smoke" is defined today.
func fixtureNet(name string) (*netxml.Net, error) {
	if name != "smoke" {
		return nil, fmt.Errorf("unknown fixture %q", name)
	}

	gridSize, pins := pinset.BuiltinSmokeNet()
	points := make([]netxml.NetPoint, len(pins))
	for i, p := range pins {
		points[i] = netxml.NetPoint{Type: "pin", X: p[0], Y: p[1]}
	}

	return &netxml.Net{GridSize: gridSize, PinCount: len(pins), Points: points}, nil
}
