package cmd

import (
	"context"
	"fmt"

	"github.com/abdul-hamid-achik/indental/packages/db"
	"github.com/abdul-hamid-achik/indental/packages/tablatal"
	"github.com/spf13/cobra"
)

var (
	tableSQLiteFlag      string
	tableSQLiteTableFlag string
)

var tableCmd = &cobra.Command{
	Use:   "table [file|directory|-]...",
	Short: "Parse a Tablatal table",
	Long: `Parse a Tablatal table into rows.

The first line is the header; each column starts where its header word
starts. With no argument, or "-", the table is read from standard input.
Directories are searched for .tbtl and .tablatal files.

Examples:
  indental table people.tbtl
  indental table people.tbtl -o tree
  cat people.tbtl | indental table -o yaml
  indental table people.tbtl --sqlite people.db --sqlite-table people`,
	RunE: tableCommand,
}

func init() {
	tableCmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("INDENTAL_OUTPUT", "json"), "Output format: json, yaml, tree (env: INDENTAL_OUTPUT)")
	tableCmd.Flags().StringVar(&tableSQLiteFlag, "sqlite", "", "Also store the rows in this SQLite database file")
	tableCmd.Flags().StringVar(&tableSQLiteTableFlag, "sqlite-table", "rows", "Table name used with --sqlite")
}

func tableCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	files, err := collectFiles(inputArgs(args), cfg.TableExtensions)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no Tablatal files found")
	}
	if tableSQLiteFlag != "" && len(files) > 1 {
		return exitWith(ExitUsageError, fmt.Errorf("--sqlite takes a single input, got %d", len(files)))
	}

	formatter, err := newFormatter(cfg, cmd.OutOrStdout())
	if err != nil {
		return exitWith(ExitUsageError, err)
	}

	for _, file := range files {
		input, err := readInput(cmd, file)
		if err != nil {
			return err
		}
		table := tablatal.ParseTable(input)

		if err := formatter.FormatTable(table); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}

		if tableSQLiteFlag != "" {
			if err := storeTable(table); err != nil {
				return err
			}
		}
	}

	return nil
}

func storeTable(table *tablatal.Table) error {
	client, err := db.NewClient("sqlite://" + tableSQLiteFlag)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.WriteTable(context.Background(), tableSQLiteTableFlag, table)
}
