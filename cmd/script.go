package cmd

import (
	"fmt"

	"capdemo/internal/script"

	"github.com/spf13/cobra"
)

// scriptCmd groups demonstration script helpers
var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Work with demonstration scripts",
	Long: `Helpers for writing demonstration scripts consumed by 'capdemo run --script'.

Available commands:
  schema    - Print the JSON Schema of a script file`,
}

// scriptSchemaCmd prints the script JSON Schema
var scriptSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of a script file",
	Long: `Print the JSON Schema describing demonstration script files.

Point your editor's YAML language server at the output to get completion
and validation while writing scripts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := script.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return err
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	scriptCmd.AddCommand(scriptSchemaCmd)
}
