package sinks

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"

	"github.com/willibrandon/timber/core"
	"github.com/willibrandon/timber/format"
)

// DefaultPrefix starts every console line.
const DefaultPrefix = "Timber"

// ConsoleSink writes calls as "<Prefix>.<LEVEL>: <message>" lines.
type ConsoleSink struct {
	label string

	mu       sync.Mutex
	output   io.Writer
	prefix   string
	theme    *ConsoleTheme
	useColor bool
}

// NewConsoleSink creates a console sink that writes to stdout.
func NewConsoleSink() *ConsoleSink {
	return newConsoleSink(colorable.NewColorableStdout(), shouldUseColor(os.Stdout))
}

// NewConsoleSinkStderr creates a console sink that writes to stderr.
func NewConsoleSinkStderr() *ConsoleSink {
	return newConsoleSink(colorable.NewColorableStderr(), shouldUseColor(os.Stderr))
}

// NewConsoleSinkWithWriter creates a console sink with a custom writer.
func NewConsoleSinkWithWriter(w io.Writer) *ConsoleSink {
	return newConsoleSink(w, shouldUseColor(w))
}

func newConsoleSink(w io.Writer, useColor bool) *ConsoleSink {
	cs := &ConsoleSink{
		output:   w,
		prefix:   DefaultPrefix,
		theme:    DefaultTheme(),
		useColor: useColor,
	}
	cs.label = DefaultLabel(cs)
	return cs
}

// Label identifies the sink.
func (cs *ConsoleSink) Label() string {
	return cs.label
}

// SetPrefix replaces the line prefix.
func (cs *ConsoleSink) SetPrefix(prefix string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.prefix = prefix
}

// SetTheme replaces the level colors.
func (cs *ConsoleSink) SetTheme(theme *ConsoleTheme) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.theme = theme
}

// SetUseColor enables or disables color output.
func (cs *ConsoleSink) SetUseColor(useColor bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.useColor = useColor
}

// Render writes one line, followed by the error detail when err is set.
func (cs *ConsoleSink) Render(level core.Level, message string, err error, args ...any) error {
	rendered := format.Lenient(message, args...)

	cs.mu.Lock()
	defer cs.mu.Unlock()

	var sb strings.Builder
	sb.WriteString(cs.paint(level, cs.prefix+"."+level.String()+": "+rendered))
	if err != nil {
		sb.WriteByte('\n')
		sb.WriteString(cs.paint(level, errorDetail(err)))
	}
	return cs.write(sb.String())
}

// RenderAnalytics writes the message, one "key -> value" line per tag in
// key order, then the error detail.
func (cs *ConsoleSink) RenderAnalytics(message string, err error, tags map[string]string, args ...any) error {
	rendered := format.Lenient(message, args...)

	cs.mu.Lock()
	defer cs.mu.Unlock()

	var sb strings.Builder
	sb.WriteString(cs.prefix + "." + core.AnalyticsLevel.String() + ": " + rendered)
	for _, k := range sortedKeys(tags) {
		sb.WriteString("\n\t" + k + " -> " + tags[k])
	}
	if err != nil {
		sb.WriteString("\n\t" + errorDetail(err))
	}
	return cs.write(cs.paint(core.AnalyticsLevel, sb.String()))
}

func (cs *ConsoleSink) paint(level core.Level, s string) string {
	if !cs.useColor {
		return s
	}
	return cs.theme.paint(level, s)
}

func (cs *ConsoleSink) write(s string) error {
	if _, err := fmt.Fprintln(cs.output, s); err != nil {
		return errors.Wrap(err, "console write")
	}
	return nil
}

// errorDetail prints err with %+v so errors carrying a stack trace, such as
// those from github.com/pkg/errors, include it.
func errorDetail(err error) string {
	return fmt.Sprintf("%+v", err)
}
