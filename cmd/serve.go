package cmd

import (
	"capdemo/internal/app"

	"github.com/spf13/cobra"
)

// serveCmd exposes the registry as MCP tools over stdio
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve capabilities as MCP tools over stdio",
	Long: `Starts a Model Context Protocol server on stdin/stdout.

Two tools are exposed:
  capability_list    - list capabilities and their variants
  capability_invoke  - invoke a variant and return its output lines

Configure your MCP client to launch 'capdemo serve'. Logs go to stderr so
they never interfere with the protocol stream.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, args []string) error {
	// stdout carries the protocol, so demo output is routed to stderr
	application, err := app.NewApplication(app.NewConfig(rootDebug, true, rootConfigPath), cmd.ErrOrStderr(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return application.Serve(cmd.Context(), rootCmd.Version, cmd.InOrStdin(), cmd.OutOrStdout())
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
