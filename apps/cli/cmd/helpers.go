package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/indental/packages/core/config"
	"github.com/abdul-hamid-achik/indental/packages/core/indental"
	"github.com/abdul-hamid-achik/indental/packages/output"
	"github.com/spf13/cobra"
)

// stdinName is the argument, and the display name, for standard input.
const stdinName = "-"

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// explicit reports whether a flag was set on the command line or through
// its environment variable, so it should win over the config file.
func explicit(cmd *cobra.Command, name, envKey string) bool {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		return true
	}
	return envKey != "" && os.Getenv(envKey) != ""
}

// loadSettings reads the config file and applies command-line overrides.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	fileConfig, err := config.LoadConfig(configFlag)
	if err != nil {
		return nil, exitWith(ExitConfigError, fmt.Errorf("loading config: %w", err))
	}

	overrides := &config.Config{}
	if cmd.Flags().Lookup("output") != nil && explicit(cmd, "output", "INDENTAL_OUTPUT") {
		overrides.Output = outputFlag
	}
	if explicit(cmd, "no-color", "INDENTAL_NO_COLOR") {
		overrides.NoColor = config.BoolPtr(noColorFlag)
	}
	if explicit(cmd, "quiet", "INDENTAL_QUIET") {
		overrides.Quiet = config.BoolPtr(quietFlag)
	}
	if cmd.Flags().Lookup("report-dangling") != nil && explicit(cmd, "report-dangling", "INDENTAL_REPORT_DANGLING") {
		overrides.ReportDangling = config.BoolPtr(reportDanglingFlag)
	}

	cfg := fileConfig.Merge(overrides)
	// Merge ignores a zero indent, which here selects compact JSON.
	if explicit(cmd, "indent", "INDENTAL_INDENT") {
		cfg.Indent = indentFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, exitWith(ExitUsageError, err)
	}
	return cfg, nil
}

// newFormatter builds the formatter selected by cfg, writing to w.
func newFormatter(cfg *config.Config, w io.Writer) (output.Formatter, error) {
	return output.New(cfg.Output, output.Options{
		Writer:  w,
		Indent:  cfg.Indent,
		NoColor: cfg.GetNoColor(),
	})
}

// parserOptions returns the parser options for cfg, sending diagnostics to
// printer unless quiet is set.
func parserOptions(cfg *config.Config, printer *output.DiagnosticPrinter, source string) []indental.Option {
	if cfg.GetQuiet() {
		return nil
	}
	return []indental.Option{
		indental.WithDiagnostics(printer.Sink(source)),
		indental.WithDanglingReports(cfg.GetReportDangling()),
	}
}

// collectFiles expands directory arguments into the files under them whose
// extension is in exts. File arguments are kept as given.
func collectFiles(args []string, exts []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		if arg == stdinName {
			files = append(files, arg)
			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if info.IsDir() {
			err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && hasExtension(path, exts) {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else {
			files = append(files, arg)
		}
	}

	return files, nil
}

func hasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// readInput reads a file, or standard input for "-".
func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == stdinName {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading standard input: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// inputArgs defaults to standard input when no arguments are given.
func inputArgs(args []string) []string {
	if len(args) == 0 {
		return []string{stdinName}
	}
	return args
}
