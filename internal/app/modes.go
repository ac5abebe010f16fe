package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"capdemo/internal/capability"
	"capdemo/internal/mcpserver"
	"capdemo/internal/script"
	"capdemo/internal/tui"
	"capdemo/pkg/logging"

	"github.com/charmbracelet/lipgloss"
)

var (
	passedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// ResolveScript picks the script to run: path if given, then the configured
// default script path, then the built-in walkthrough.
func (a *Application) ResolveScript(path string) (*script.Script, error) {
	if path == "" && a.config.CapdemoConfig != nil {
		path = a.config.CapdemoConfig.Demo.ScriptPath
	}
	if path == "" {
		return script.Default(), nil
	}
	s, err := script.Load(path)
	if err != nil {
		return nil, err
	}
	logging.Debug("CLI", "Loaded script %s from %s", s.Name, path)
	return s, nil
}

// RunScript runs the resolved script, prints a per-step summary and returns
// the report error when any step did not pass.
func (a *Application) RunScript(ctx context.Context, path string) (*script.Report, error) {
	s, err := a.ResolveScript(path)
	if err != nil {
		return nil, err
	}

	report := script.NewRunner(a.registry).Run(ctx, s)
	a.printReport(report)
	return report, report.Err()
}

func (a *Application) printReport(report *script.Report) {
	fmt.Fprintln(a.out)
	for _, res := range report.Results {
		line := fmt.Sprintf("%-8s %s", res.Status, res.Step.Label())
		if res.Status == script.StatusPassed && res.Err != nil {
			line += fmt.Sprintf(" (expected: %v)", res.Err)
		}
		fmt.Fprintln(a.out, a.style(res.Status, line))
	}
	passed, failed, skipped := report.Counts()
	fmt.Fprintf(a.out, "%d passed, %d failed, %d skipped\n", passed, failed, skipped)
}

func (a *Application) style(status script.Status, line string) string {
	if a.config.NoColor {
		return line
	}
	switch status {
	case script.StatusPassed:
		return passedStyle.Render(line)
	case script.StatusFailed:
		return failedStyle.Render(line)
	default:
		return skippedStyle.Render(line)
	}
}

// Invoke resolves one variant and performs it through a Consumer that only
// knows the injected variant.
func (a *Application) Invoke(ctx context.Context, capabilityName, variantID string, args ...string) error {
	variant, err := a.registry.Lookup(capabilityName, variantID)
	if err != nil {
		return err
	}
	consumer := capability.NewConsumer(variant, a.registry.Sink())
	logging.Debug("CLI", "Performing %s/%s %s", capabilityName, variantID, strings.Join(args, " "))
	return consumer.PerformAction(ctx, args...)
}

// Serve runs the MCP server over in and out until ctx is done or in closes.
func (a *Application) Serve(ctx context.Context, version string, in io.Reader, out io.Writer) error {
	logging.Info("MCP", "Serving %d capabilities over stdio", len(a.registry.Capabilities()))
	return mcpserver.New(a.registry, version).Serve(ctx, in, out)
}

// Browse runs the interactive browser with logging redirected to its footer.
func (a *Application) Browse(ctx context.Context) error {
	logCh := logging.InitForTUI(initialLevel(a.config))
	defer logging.CloseTUIChannel()

	if err := tui.Run(ctx, a.registry, logCh); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	return nil
}
