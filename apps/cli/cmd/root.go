package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	configFlag  string
	noColorFlag bool
	quietFlag   bool
	indentFlag  int
)

var rootCmd = &cobra.Command{
	Use:   "indental",
	Short: "Indentation-structured text to data.",
	Long: `indental parses Indental documents, a plain-text notation where nesting
is expressed by two-space indentation, and Tablatal tables, where column
boundaries come from the header line.

Parsed documents can be printed as JSON, YAML or a tree, queried by path,
compared, and exported to SQLite.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", getEnvString("INDENTAL_CONFIG", ""), "Path to config file (env: INDENTAL_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", getEnvBool("INDENTAL_NO_COLOR", false), "Disable colored output (env: INDENTAL_NO_COLOR)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", getEnvBool("INDENTAL_QUIET", false), "Suppress warnings (env: INDENTAL_QUIET)")
	rootCmd.PersistentFlags().IntVar(&indentFlag, "indent", getEnvInt("INDENTAL_INDENT", 2), "Indentation width for json, yaml and tree output (env: INDENTAL_INDENT)")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
}

// exitError carries a specific process exit status.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func exitWith(code int, err error) error {
	return &exitError{code: code, err: err}
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitFailure
}
