package cmd

import (
	"github.com/spf13/cobra"
)

// invokeCmd invokes one variant of one capability
var invokeCmd = &cobra.Command{
	Use:   "invoke <capability> <variant> [args...]",
	Short: "Invoke one variant of a capability",
	Long: `Looks up a single capability variant and performs it.

Additional arguments are passed to the variant, for example:

  capdemo invoke wash washer towels
  capdemo invoke supplyPower generator

Use 'capdemo capability list' to see every capability and its variants.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runInvoke,
}

func runInvoke(cmd *cobra.Command, args []string) error {
	application, err := newApplication(cmd)
	if err != nil {
		return err
	}
	return application.Invoke(cmd.Context(), args[0], args[1], args[2:]...)
}

func init() {
	rootCmd.AddCommand(invokeCmd)
}
