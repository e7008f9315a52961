package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/indental/packages/core/indental"
	"github.com/abdul-hamid-achik/indental/packages/output"
	"github.com/abdul-hamid-achik/indental/packages/query"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <file|-> <path>",
	Short: "Print the value at a path in a document",
	Long: `Print the value at a gjson path in a parsed Indental document.

Labels are upper-cased by the parser, so paths use upper-case segments.
Scalars print as plain text; sequences and mappings print as JSON.

Examples:
  indental get notes.ndtl NAME.KEY
  indental get notes.ndtl NAME.LIST.0
  indental get notes.ndtl NAME.LIST.#
  cat notes.ndtl | indental get - NAME`,
	Args: cobra.ExactArgs(2),
	RunE: getCommand,
}

func getCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	file, path := args[0], args[1]
	input, err := readInput(cmd, file)
	if err != nil {
		return err
	}

	printer := output.NewDiagnosticPrinter(cmd.ErrOrStderr(), cfg.GetNoColor())
	doc := indental.NewParser(parserOptions(cfg, printer, "")...).Parse(input)

	extractor, err := query.New(doc)
	if err != nil {
		return err
	}

	value, ok := extractor.GetString(path)
	if !ok {
		return fmt.Errorf("path %q not found", path)
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
