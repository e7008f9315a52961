package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/abdul-hamid-achik/indental/packages/core/config"
	"github.com/abdul-hamid-achik/indental/packages/core/indental"
	"github.com/abdul-hamid-achik/indental/packages/db"
	"github.com/abdul-hamid-achik/indental/packages/output"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	outputFlag         string
	outputFileFlag     string
	reportDanglingFlag bool
	watchFlag          bool
	sqliteFlag         string
	sqliteTableFlag    string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|directory|-]...",
	Short: "Parse Indental documents",
	Long: `Parse Indental documents and print the result.

With no arguments, or "-", the document is read from standard input.
Directories are searched for files with the configured extensions
(.ndtl and .indental by default).

Examples:
  indental parse notes.ndtl
  cat notes.ndtl | indental parse -o yaml
  indental parse ./docs/ -o tree
  indental parse notes.ndtl --watch
  indental parse notes.ndtl --sqlite notes.db --sqlite-table notes`,
	RunE: parseCommand,
}

func init() {
	parseCmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("INDENTAL_OUTPUT", "json"), "Output format: json, yaml, tree (env: INDENTAL_OUTPUT)")
	parseCmd.Flags().StringVar(&outputFileFlag, "output-file", getEnvString("INDENTAL_OUTPUT_FILE", ""), "Write output to file (default: stdout) (env: INDENTAL_OUTPUT_FILE)")
	parseCmd.Flags().BoolVar(&reportDanglingFlag, "report-dangling", getEnvBool("INDENTAL_REPORT_DANGLING", false), "Warn about lines dropped because of their indentation (env: INDENTAL_REPORT_DANGLING)")
	parseCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch files for changes and parse them again")
	parseCmd.Flags().StringVar(&sqliteFlag, "sqlite", "", "Also store the flattened document in this SQLite database file")
	parseCmd.Flags().StringVar(&sqliteTableFlag, "sqlite-table", "document", "Table name used with --sqlite")
}

func parseCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	args = inputArgs(args)
	files, err := collectFiles(args, cfg.Extensions)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no Indental files found")
	}
	if sqliteFlag != "" && len(files) > 1 {
		return exitWith(ExitUsageError, fmt.Errorf("--sqlite takes a single input, got %d", len(files)))
	}

	// Setup output writer
	var outWriter io.Writer = cmd.OutOrStdout()
	if outputFileFlag != "" {
		f, err := os.Create(outputFileFlag)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer f.Close()
		outWriter = f
	}

	formatter, err := newFormatter(cfg, outWriter)
	if err != nil {
		return exitWith(ExitUsageError, err)
	}
	printer := output.NewDiagnosticPrinter(cmd.ErrOrStderr(), cfg.GetNoColor())

	parseAll := func() error {
		for _, file := range files {
			if err := parseOne(cmd, cfg, formatter, printer, outWriter, file, len(files) > 1); err != nil {
				return err
			}
		}
		return nil
	}

	if err := parseAll(); err != nil {
		return err
	}

	if !watchFlag {
		return nil
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchFiles(ctx, cmd, files, args, cfg, WatchDebounceDelay, func() {
		if err := parseAll(); err != nil {
			formatter.FormatError(err)
		}
	})
}

func parseOne(cmd *cobra.Command, cfg *config.Config, formatter output.Formatter, printer *output.DiagnosticPrinter, w io.Writer, file string, multiple bool) error {
	input, err := readInput(cmd, file)
	if err != nil {
		return err
	}

	source := ""
	if multiple || file != stdinName {
		source = file
	}
	doc := indental.NewParser(parserOptions(cfg, printer, source)...).Parse(input)

	if multiple && cfg.Output == "tree" {
		fmt.Fprintf(w, "\n%s:\n", file)
	}
	if err := formatter.FormatDocument(doc); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	if sqliteFlag != "" {
		client, err := db.NewClient("sqlite://" + sqliteFlag)
		if err != nil {
			return err
		}
		defer client.Close()
		if err := client.WriteDocument(context.Background(), sqliteTableFlag, doc); err != nil {
			return err
		}
	}

	return nil
}

// watchFiles calls rerun after any watched file is written, until ctx is
// done or the watcher closes. Bursts of writes within delay collapse into
// one call, and calls never overlap.
func watchFiles(ctx context.Context, cmd *cobra.Command, files, args []string, cfg *config.Config, delay time.Duration, rerun func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Add files and directories to watch
	watchedDirs := make(map[string]bool)
	watchedFiles := make(map[string]bool)
	for _, file := range files {
		if file == stdinName {
			return exitWith(ExitUsageError, fmt.Errorf("--watch cannot be used with standard input"))
		}
		watchedFiles[filepath.Clean(file)] = true
		dir := filepath.Dir(file)
		if !watchedDirs[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			watchedDirs[dir] = true
		}
	}

	// Also watch the original args if they're directories
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			_ = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if info.IsDir() && !watchedDirs[path] {
					_ = watcher.Add(path)
					watchedDirs[path] = true
				}
				return nil
			})
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")

	// The debounce timer only signals; rerun happens on this goroutine.
	debounce := time.NewTimer(delay)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := ""

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			relevant := watchedFiles[filepath.Clean(event.Name)] || hasExtension(event.Name, cfg.Extensions)
			if event.Has(fsnotify.Write) && relevant {
				pending = event.Name
				debounce.Reset(delay)
			}

		case <-debounce.C:
			if pending == "" {
				continue
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "\nFile changed: %s\n\n", pending)
			pending = ""
			rerun()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watcher error: %v\n", err)
		}
	}
}
