package cmd

import (
	"github.com/spf13/cobra"
)

var runScriptPath string

// runCmd runs a demonstration script
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the SOLID walkthrough or a demonstration script",
	Long: `Runs a demonstration script against the capability registry and prints
a summary of every step.

Without --script the configured demo.scriptPath is used, and without that
the built-in walkthrough of all five principles runs. A failing step ends
only that step; the remaining steps still run. Steps may declare an
expected failure (unknown_capability, unknown_variant or failure), which
then counts as passing.

The command exits non-zero when any step did not pass.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	application, err := newApplication(cmd)
	if err != nil {
		return err
	}
	_, err = application.RunScript(cmd.Context(), runScriptPath)
	return err
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runScriptPath, "script", "s", "", "Path to a YAML demonstration script")
}
