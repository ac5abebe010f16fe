package cmd

import (
	"github.com/spf13/cobra"
)

// browseCmd starts the interactive capability browser
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse and invoke capabilities interactively",
	Long: `Opens a terminal UI listing every capability variant.

Keys:
  enter  invoke the selected variant
  y      copy the last output to the clipboard
  c      clear the output pane
  /      filter the list
  q      quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication(cmd)
		if err != nil {
			return err
		}
		return application.Browse(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
