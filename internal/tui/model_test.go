package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"capdemo/internal/capability"
	"capdemo/internal/solid"
	"capdemo/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	reg := capability.NewRegistry(nil)
	require.NoError(t, solid.RegisterAll(reg))
	return newModel(context.Background(), reg, nil)
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	require.True(t, ok)
	return nm, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_ListsEveryVariant(t *testing.T) {
	m := newTestModel(t)

	items := m.list.Items()
	require.NotEmpty(t, items)

	first, ok := items[0].(variantItem)
	require.True(t, ok)
	// Capabilities are sorted by name, variants kept in registration order.
	assert.Equal(t, "blend / blender", first.Title())
	assert.Equal(t, "Blend food", first.Description())
}

func TestUpdate_InvokeSelected(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"Blending"}, m.lastOutput)
	assert.NoError(t, m.lastErr)
	assert.Equal(t, "Invoked blend / blender", m.status)
	assert.Contains(t, m.View(), "Blending")
}

func TestUpdate_CopyOutput(t *testing.T) {
	original := writeClipboard
	defer func() { writeClipboard = original }()

	var copied string
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}

	m := newTestModel(t)

	m, _ = update(t, m, keyRunes("y"))
	assert.Equal(t, "No output to copy", m.status)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, keyRunes("y"))
	assert.Equal(t, "Blending", copied)
	assert.Equal(t, "Output copied to clipboard", m.status)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	m, _ = update(t, m, keyRunes("y"))
	assert.Equal(t, "Copy failed", m.status)
}

func TestUpdate_Clear(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, keyRunes("c"))

	assert.Empty(t, m.lastOutput)
	assert.Empty(t, m.status)
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := update(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_LogMessages(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < maxLogLines+2; i++ {
		m, _ = update(t, m, logMsg(logging.LogEntry{
			Timestamp: time.Now(),
			Level:     logging.LevelInfo,
			Subsystem: "Test",
			Message:   "entry",
		}))
	}
	assert.Len(t, m.logs, maxLogLines)

	m, _ = update(t, m, logsClosedMsg{})
	assert.Nil(t, m.logCh)
}

func TestWaitForLog(t *testing.T) {
	assert.Nil(t, waitForLog(nil))

	ch := make(chan logging.LogEntry, 1)
	ch <- logging.LogEntry{Message: "hello"}
	msg := waitForLog(ch)()
	assert.Equal(t, "hello", logging.LogEntry(msg.(logMsg)).Message)

	close(ch)
	assert.IsType(t, logsClosedMsg{}, waitForLog(ch)())
}
