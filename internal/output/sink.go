// Package output provides the text sinks that capabilities emit their
// demonstration lines to.
//
// A Sink is itself a capability with substitutable variants: WriterSink
// writes to a terminal or file, Recorder keeps lines in memory for tests
// and tool results, and Tee fans a line out to several sinks.
package output

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Sink receives the lines emitted by capability variants.
type Sink interface {
	Emit(line string) error
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(line string) error

// Emit calls f(line).
func (f SinkFunc) Emit(line string) error {
	return f(line)
}

// Discard drops every line.
var Discard Sink = SinkFunc(func(string) error { return nil })

var lineStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#87D7FF"})

// WriterSink writes one line per Emit to an io.Writer.
type WriterSink struct {
	mu     sync.Mutex
	w      io.Writer
	styled bool
	prefix string
}

// WriterOption configures a WriterSink.
type WriterOption func(*WriterSink)

// WithStyle renders lines with the terminal accent color.
func WithStyle(styled bool) WriterOption {
	return func(s *WriterSink) {
		s.styled = styled
	}
}

// WithPrefix prepends prefix to every line.
func WithPrefix(prefix string) WriterOption {
	return func(s *WriterSink) {
		s.prefix = prefix
	}
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer, opts ...WriterOption) *WriterSink {
	s := &WriterSink{w: w}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Emit writes line followed by a newline.
func (s *WriterSink) Emit(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	text := s.prefix + line
	if s.styled {
		text = lineStyle.Render(text)
	}
	if _, err := fmt.Fprintln(s.w, text); err != nil {
		return fmt.Errorf("failed to write output line: %w", err)
	}
	return nil
}

// Recorder keeps every emitted line in memory.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit records line.
func (r *Recorder) Emit(line string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
	return nil
}

// Lines returns a copy of the recorded lines.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]string, len(r.lines))
	copy(result, r.lines)
	return result
}

// String joins the recorded lines with newlines.
func (r *Recorder) String() string {
	return strings.Join(r.Lines(), "\n")
}

// Reset drops all recorded lines.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}

// Tee returns a sink that emits every line to each of sinks in order.
// The first error stops the fan-out and is returned.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(line string) error {
		for _, s := range sinks {
			if err := s.Emit(line); err != nil {
				return err
			}
		}
		return nil
	})
}
