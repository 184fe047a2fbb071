package sinks

import (
	"sync"

	"github.com/willibrandon/timber/core"
	"github.com/willibrandon/timber/format"
)

// Call is one call received by a MemorySink.
type Call struct {
	Analytics bool
	Level     core.Level
	Message   string
	Err       error
	Tags      map[string]string
	Args      []any

	// Rendered is the message after argument interpolation.
	Rendered string
}

// MemorySink records calls in memory for tests and inspection.
type MemorySink struct {
	label string

	mu             sync.RWMutex
	calls          []Call
	renderCount    int
	analyticsCount int
}

// NewMemorySink creates a new memory sink.
func NewMemorySink() *MemorySink {
	m := &MemorySink{}
	m.label = DefaultLabel(m)
	return m
}

// Label identifies the sink.
func (m *MemorySink) Label() string {
	return m.label
}

// Render records a non-analytics call.
func (m *MemorySink) Render(level core.Level, message string, err error, args ...any) error {
	m.record(Call{
		Level:    level,
		Message:  message,
		Err:      err,
		Args:     copyArgs(args),
		Rendered: format.Lenient(message, args...),
	})
	return nil
}

// RenderAnalytics records an analytics call.
func (m *MemorySink) RenderAnalytics(message string, err error, tags map[string]string, args ...any) error {
	m.record(Call{
		Analytics: true,
		Level:     core.AnalyticsLevel,
		Message:   message,
		Err:       err,
		Tags:      copyTags(tags),
		Args:      copyArgs(args),
		Rendered:  format.Lenient(message, args...),
	})
	return nil
}

func (m *MemorySink) record(c Call) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, c)
	if c.Analytics {
		m.analyticsCount++
	} else {
		m.renderCount++
	}
}

// Calls returns a copy of all recorded calls.
func (m *MemorySink) Calls() []Call {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Call, len(m.calls))
	copy(result, m.calls)
	return result
}

// Count returns the number of recorded calls.
func (m *MemorySink) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.calls)
}

// RenderCount returns how many times Render was called.
func (m *MemorySink) RenderCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.renderCount
}

// AnalyticsCount returns how many times RenderAnalytics was called.
func (m *MemorySink) AnalyticsCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.analyticsCount
}

// Last returns the most recent call, or nil if none were recorded.
func (m *MemorySink) Last() *Call {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.calls) == 0 {
		return nil
	}
	c := m.calls[len(m.calls)-1]
	return &c
}

// Find returns the calls matching predicate.
func (m *MemorySink) Find(predicate func(*Call) bool) []Call {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []Call
	for i := range m.calls {
		if predicate(&m.calls[i]) {
			result = append(result, m.calls[i])
		}
	}
	return result
}

// Reset removes all recorded calls and zeroes the counters.
func (m *MemorySink) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = m.calls[:0]
	m.renderCount = 0
	m.analyticsCount = 0
}

func copyArgs(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	out := make([]any, len(args))
	copy(out, args)
	return out
}

func copyTags(tags map[string]string) map[string]string {
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		out[k] = v
	}
	return out
}
