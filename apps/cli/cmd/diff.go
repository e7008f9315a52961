package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/abdul-hamid-achik/indental/packages/core/config"
	"github.com/abdul-hamid-achik/indental/packages/core/indental"
	"github.com/abdul-hamid-achik/indental/packages/diff"
	"github.com/abdul-hamid-achik/indental/packages/output"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	diffFormatFlag   string
	diffExitCodeFlag bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <file1> <file2>",
	Short: "Compare two Indental documents",
	Long: `Compare two Indental documents value by value.

Entries are reported by their dotted label path as added, removed or
changed. Sequences compare as a whole.

Examples:
  indental diff old.ndtl new.ndtl
  indental diff old.ndtl new.ndtl --format json
  indental diff old.ndtl new.ndtl --exit-code`,
	Args: cobra.ExactArgs(2),
	RunE: diffCommand,
}

func init() {
	diffCmd.Flags().StringVarP(&diffFormatFlag, "format", "f", "console", "Output format: console, json")
	diffCmd.Flags().BoolVar(&diffExitCodeFlag, "exit-code", false, "Exit with status 1 when the documents differ")
}

func diffCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	printer := output.NewDiagnosticPrinter(cmd.ErrOrStderr(), cfg.GetNoColor())

	docs := make([]indental.Document, 2)
	for i, file := range args {
		input, err := readInput(cmd, file)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
		docs[i] = indental.NewParser(parserOptions(cfg, printer, file)...).Parse(input)
	}

	result := diff.Compare(docs[0], docs[1])

	switch strings.ToLower(diffFormatFlag) {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", strings.Repeat(" ", cfg.Indent))
		if err := encoder.Encode(result); err != nil {
			return err
		}
	case "console", "":
		outputDiffConsole(cmd.OutOrStdout(), cfg, args[0], args[1], result)
	default:
		return exitWith(ExitUsageError, fmt.Errorf("unknown diff format %q", diffFormatFlag))
	}

	if diffExitCodeFlag && !result.Equal() {
		return exitWith(ExitFailure, fmt.Errorf("documents differ"))
	}
	return nil
}

func outputDiffConsole(w io.Writer, cfg *config.Config, file1, file2 string, result *diff.Result) {
	paint := func(attr color.Attribute) func(a ...interface{}) string {
		c := color.New(attr)
		if cfg.GetNoColor() {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	green := paint(color.FgGreen)
	red := paint(color.FgRed)
	yellow := paint(color.FgYellow)
	cyan := paint(color.FgCyan)
	bold := paint(color.Bold)

	fmt.Fprintf(w, "%s\n", bold("Document Comparison"))
	fmt.Fprintf(w, "  %s: %s\n", cyan("File 1"), file1)
	fmt.Fprintf(w, "  %s: %s\n\n", cyan("File 2"), file2)

	if result.Equal() {
		fmt.Fprintf(w, "%s\n", green("No differences"))
		return
	}

	for _, c := range result.Changes {
		switch c.Kind {
		case diff.Added:
			fmt.Fprintf(w, "  %s %s: %s\n", green("+"), c.Path, formatDiffValue(c.After))
		case diff.Removed:
			fmt.Fprintf(w, "  %s %s: %s\n", red("-"), c.Path, formatDiffValue(c.Before))
		case diff.Changed:
			fmt.Fprintf(w, "  %s %s: %s → %s\n", yellow("~"), c.Path, formatDiffValue(c.Before), formatDiffValue(c.After))
		}
	}

	fmt.Fprintf(w, "\n%s\n", bold("Summary"))
	fmt.Fprintf(w, "  Added:    %s\n", green(fmt.Sprintf("%d", result.Summary.Added)))
	fmt.Fprintf(w, "  Removed:  %s\n", red(fmt.Sprintf("%d", result.Summary.Removed)))
	fmt.Fprintf(w, "  Changed:  %s\n", yellow(fmt.Sprintf("%d", result.Summary.Changed)))
}

// formatDiffValue renders scalars as quoted strings and structures as JSON.
func formatDiffValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
