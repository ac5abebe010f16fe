// Package tui implements `capdemo browse`, an interactive list of every
// capability variant that can be invoked in place.
package tui

import (
	"context"
	"fmt"
	"strings"

	"capdemo/internal/capability"
	"capdemo/internal/output"
	"capdemo/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// For mocking in tests
var writeClipboard = clipboard.WriteAll

// variantItem is one (capability, variant) row.
type variantItem struct {
	capability  string
	variant     string
	description string
}

func (i variantItem) Title() string       { return i.capability + " / " + i.variant }
func (i variantItem) Description() string { return i.description }
func (i variantItem) FilterValue() string { return i.capability + " " + i.variant }

// logMsg carries one entry from the logging TUI channel.
type logMsg logging.LogEntry

// logsClosedMsg is sent once the logging channel is closed.
type logsClosedMsg struct{}

type model struct {
	ctx      context.Context
	registry *capability.Registry
	keys     KeyMap
	list     list.Model

	lastOutput []string
	lastErr    error
	status     string

	logCh <-chan logging.LogEntry
	logs  []string

	width, height int
}

func newModel(ctx context.Context, registry *capability.Registry, logCh <-chan logging.LogEntry) model {
	var items []list.Item
	for _, sum := range registry.Capabilities() {
		for _, v := range sum.Variants {
			items = append(items, variantItem{
				capability:  sum.Name,
				variant:     v,
				description: sum.Description,
			})
		}
	}

	keys := DefaultKeyMap()
	l := list.New(items, list.NewDefaultDelegate(), defaultWidth, defaultHeight/2)
	l.Title = "Capabilities"
	l.SetShowHelp(true)
	l.AdditionalShortHelpKeys = keys.bindings
	l.DisableQuitKeybindings()

	return model{
		ctx:      ctx,
		registry: registry,
		keys:     keys,
		list:     l,
		logCh:    logCh,
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

func (m model) Init() tea.Cmd {
	return waitForLog(m.logCh)
}

func waitForLog(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return logsClosedMsg{}
		}
		return logMsg(entry)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, max(msg.Height-maxLogLines-8, 5))
		return m, nil

	case logMsg:
		m.appendLog(logging.LogEntry(msg).String())
		return m, waitForLog(m.logCh)

	case logsClosedMsg:
		m.logCh = nil
		return m, nil

	case tea.KeyMsg:
		// While filtering every key belongs to the filter input.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Invoke):
			m.invokeSelected()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.copyOutput()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.lastOutput, m.lastErr, m.status = nil, nil, ""
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) invokeSelected() {
	item, ok := m.list.SelectedItem().(variantItem)
	if !ok {
		m.status = "Nothing selected"
		return
	}

	rec := output.NewRecorder()
	err := m.registry.InvokeTo(m.ctx, rec, item.capability, item.variant)
	m.lastOutput = rec.Lines()
	m.lastErr = err
	if err != nil {
		m.status = fmt.Sprintf("%s failed", item.Title())
		logging.Warn("Browser", "Invocation %s failed: %v", item.Title(), err)
		return
	}
	m.status = fmt.Sprintf("Invoked %s", item.Title())
}

func (m *model) copyOutput() {
	if len(m.lastOutput) == 0 {
		m.status = "No output to copy"
		return
	}
	if err := writeClipboard(strings.Join(m.lastOutput, "\n")); err != nil {
		logging.Error("Browser", err, "Failed to copy output")
		m.status = "Copy failed"
		return
	}
	m.status = "Output copied to clipboard"
}

func (m *model) appendLog(line string) {
	m.logs = append(m.logs, line)
	if len(m.logs) > maxLogLines {
		m.logs = m.logs[len(m.logs)-maxLogLines:]
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("capdemo: pick a variant and press enter"))
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")

	body := "(no output yet)"
	if len(m.lastOutput) > 0 {
		body = strings.Join(m.lastOutput, "\n")
	}
	if m.lastErr != nil {
		body += "\n" + errorStyle.Render(m.lastErr.Error())
	}
	b.WriteString(outputStyle.Width(max(m.width-4, 20)).Render(body))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if len(m.logs) > 0 {
		b.WriteString(logStyle.Render(strings.Join(m.logs, "\n")))
	}

	return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
}

// Run starts the browser and blocks until the user quits or ctx is done.
// logCh may be nil.
func Run(ctx context.Context, registry *capability.Registry, logCh <-chan logging.LogEntry) error {
	p := tea.NewProgram(newModel(ctx, registry, logCh), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser exited with error: %w", err)
	}
	return nil
}
