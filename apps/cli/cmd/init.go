package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/indental/packages/core/config"
	"github.com/spf13/cobra"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file and an example document",
	Long: `Initialize indental in the current directory.

This creates:
  - .indental.yaml   - Configuration file
  - example.ndtl     - Example Indental document

Examples:
  indental init
  indental init --force`,
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite existing files")
}

const exampleDocument = `; Lines starting with a semicolon are comments.
; Children are indented two spaces past their parent.

BOOK
  TITLE : The Left Hand of Darkness
  AUTHOR : Ursula K. Le Guin
  TAGS
    science fiction
    anthropology
  EDITION
    YEAR : 1969
    PUBLISHER : Ace Books
`

func initCommand(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	configFile := filepath.Join(cwd, config.ConfigFilenames[0])
	exampleFile := filepath.Join(cwd, "example.ndtl")

	if !forceInit {
		for _, f := range []string{configFile, exampleFile} {
			if _, err := os.Stat(f); err == nil {
				return fmt.Errorf("file already exists: %s (use --force to overwrite)", f)
			}
		}
	}

	if err := config.DefaultConfig().SaveConfig(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)

	if err := os.WriteFile(exampleFile, []byte(exampleDocument), 0644); err != nil {
		return fmt.Errorf("failed to create example file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", exampleFile)

	fmt.Fprintf(cmd.OutOrStdout(), "\nindental initialized!\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'indental parse example.ndtl -o tree' to see the parsed example.\n")

	return nil
}
