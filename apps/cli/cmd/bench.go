package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/abdul-hamid-achik/indental/packages/bench"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	benchIterationsFlag int
	benchWorkersFlag    int
	benchJSONFlag       bool
)

var benchCmd = &cobra.Command{
	Use:   "bench <file|->",
	Short: "Measure how long a document takes to parse",
	Long: `Parse a document repeatedly and report latency percentiles.

Examples:
  indental bench notes.ndtl
  indental bench notes.ndtl -n 10000 --workers 4
  indental bench notes.ndtl --json`,
	Args: cobra.ExactArgs(1),
	RunE: benchCommand,
}

func init() {
	benchCmd.Flags().IntVarP(&benchIterationsFlag, "iterations", "n", 1000, "Number of parses")
	benchCmd.Flags().IntVar(&benchWorkersFlag, "workers", 1, "Number of concurrent parsers")
	benchCmd.Flags().BoolVar(&benchJSONFlag, "json", false, "Output results as JSON")
}

func benchCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if benchIterationsFlag <= 0 || benchWorkersFlag <= 0 {
		return exitWith(ExitUsageError, fmt.Errorf("--iterations and --workers must be positive"))
	}

	input, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := bench.Run(ctx, input, bench.Options{
		Iterations: benchIterationsFlag,
		Workers:    benchWorkersFlag,
	})
	if err != nil && summary.Count == 0 {
		return err
	}

	w := cmd.OutOrStdout()
	if benchJSONFlag {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", cfg.Indent))
		return encoder.Encode(summary)
	}

	c := color.New(color.Bold)
	if cfg.GetNoColor() {
		c.DisableColor()
	}
	bold := c.SprintFunc()

	lines := strings.Count(input, "\n") + 1
	fmt.Fprintf(w, "%s %s (%d lines)\n", bold("Benchmark:"), args[0], lines)
	fmt.Fprintf(w, "  Parses:  %d\n", summary.Count)
	fmt.Fprintf(w, "  Total:   %s\n", summary.Total)
	fmt.Fprintf(w, "  Min:     %s\n", summary.Min)
	fmt.Fprintf(w, "  Mean:    %s\n", summary.Mean)
	fmt.Fprintf(w, "  P50:     %s\n", summary.P50)
	fmt.Fprintf(w, "  P95:     %s\n", summary.P95)
	fmt.Fprintf(w, "  P99:     %s\n", summary.P99)
	fmt.Fprintf(w, "  Max:     %s\n", summary.Max)
	return err
}
