package cmd

import (
	"strings"

	"capdemo/internal/capability"
	"capdemo/internal/cli"
	"capdemo/internal/solid"

	"github.com/spf13/cobra"
)

var capabilityOutputFormat string

// capabilityCmd represents the capability command
var capabilityCmd = &cobra.Command{
	Use:   "capability",
	Short: "Inspect registered capabilities",
	Long: `Inspect the capabilities registered by capdemo.

Available commands:
  list      - List all capabilities with their variants`,
}

// capabilityListCmd lists all capabilities
var capabilityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all capabilities",
	Long: `List every registered capability, the SOLID principle it illustrates
and its variants in registration order.`,
	Args: cobra.NoArgs,
	RunE: runCapabilityList,
}

// capabilityRow is the printed form of one capability.
type capabilityRow struct {
	Name        string   `json:"name" yaml:"name"`
	Principle   string   `json:"principle" yaml:"principle"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Parameters  []string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Variants    []string `json:"variants" yaml:"variants"`
}

func init() {
	rootCmd.AddCommand(capabilityCmd)

	capabilityCmd.AddCommand(capabilityListCmd)

	capabilityCmd.PersistentFlags().StringVarP(&capabilityOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
}

func runCapabilityList(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(capabilityOutputFormat)
	if err != nil {
		return err
	}

	application, err := newApplication(cmd)
	if err != nil {
		return err
	}

	rows := capabilityRows(application.Registry().Capabilities())

	tbl := cli.Table{Headers: []string{"capability", "principle", "variants", "description"}}
	for _, r := range rows {
		tbl.Rows = append(tbl.Rows, []string{r.Name, r.Principle, strings.Join(r.Variants, ", "), r.Description})
	}

	printer := &cli.Printer{
		Format:  format,
		Out:     cmd.OutOrStdout(),
		NoColor: application.Config().NoColor,
	}
	return printer.Print(rows, tbl)
}

func capabilityRows(summaries []capability.Summary) []capabilityRow {
	principles := solid.Principles()
	rows := make([]capabilityRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, capabilityRow{
			Name:        s.Name,
			Principle:   string(principles[s.Name]),
			Description: s.Description,
			Parameters:  s.Parameters,
			Variants:    s.Variants,
		})
	}
	return rows
}
