// Package cli formats command results for the terminal.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

const maxDescriptionWidth = 50

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Table is the tabular rendering of a result.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Printer writes results in the configured format.
type Printer struct {
	Format  OutputFormat
	Out     io.Writer
	NoColor bool
}

// Print writes data as JSON or YAML, or tbl for the table format.
func (p *Printer) Print(data interface{}, tbl Table) error {
	switch p.Format {
	case OutputFormatJSON:
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		_, err = fmt.Fprintln(p.Out, string(b))
		return err
	case OutputFormatYAML:
		b, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to convert to YAML: %w", err)
		}
		_, err = p.Out.Write(b)
		return err
	case OutputFormatTable, "":
		return p.printTable(tbl)
	default:
		return fmt.Errorf("unsupported output format: %s", p.Format)
	}
}

func (p *Printer) printTable(tbl Table) error {
	if len(tbl.Rows) == 0 {
		_, err := fmt.Fprintln(p.Out, p.color(text.FgYellow, "No items found"))
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.Out)
	t.SetStyle(table.StyleRounded)

	headers := make(table.Row, len(tbl.Headers))
	for i, h := range tbl.Headers {
		headers[i] = p.color(text.FgHiCyan, strings.ToUpper(h))
	}
	t.AppendHeader(headers)

	for _, r := range tbl.Rows {
		row := make(table.Row, len(r))
		for i, cell := range r {
			if i < len(tbl.Headers) && strings.EqualFold(tbl.Headers[i], "description") {
				cell = FormatDescription(cell)
			}
			row[i] = cell
		}
		t.AppendRow(row)
	}

	t.Render()
	return nil
}

func (p *Printer) color(c text.Color, s string) string {
	if p.NoColor {
		return s
	}
	return c.Sprint(s)
}

// FormatDescription truncates long descriptions to a fixed display width.
func FormatDescription(desc string) string {
	return runewidth.Truncate(desc, maxDescriptionWidth, "...")
}
