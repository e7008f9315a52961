package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/indental/packages/core/indental"
	"github.com/abdul-hamid-achik/indental/packages/output"
	"github.com/spf13/cobra"
)

var strictFlag bool

var validateCmd = &cobra.Command{
	Use:   "validate <file|directory|->...",
	Short: "Check Indental files for redefined labels and unattached lines",
	Long: `Check Indental files for redefined top-level labels and for lines whose
indentation leaves them without a parent. Such lines are silently dropped
by the parser; validate reports them.

Examples:
  indental validate notes.ndtl
  indental validate ./docs/ --strict`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateCommand,
}

func init() {
	validateCmd.Flags().BoolVar(&strictFlag, "strict", getEnvBool("INDENTAL_STRICT", false), "Exit with status 2 when any warning is found (env: INDENTAL_STRICT)")
}

func validateCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	files, err := collectFiles(args, cfg.Extensions)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no Indental files found")
	}

	printer := output.NewDiagnosticPrinter(cmd.ErrOrStderr(), cfg.GetNoColor())
	total := 0
	for _, file := range files {
		input, err := readInput(cmd, file)
		if err != nil {
			return err
		}

		_, diags := indental.ParseWithDiagnostics(input)
		for _, d := range diags {
			printer.Print(file, d)
		}
		total += len(diags)

		if len(diags) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s\n", file)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d warning(s)\n", file, len(diags))
		}
	}

	if strictFlag && total > 0 {
		return exitWith(ExitDiagnostics, fmt.Errorf("validation found %d warning(s)", total))
	}

	return nil
}
