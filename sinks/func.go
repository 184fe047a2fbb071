package sinks

import (
	"github.com/willibrandon/timber/core"
)

// RenderFunc handles non-analytics calls for a FuncSink.
type RenderFunc func(level core.Level, message string, err error, args ...any) error

// AnalyticsFunc handles analytics calls for a FuncSink.
type AnalyticsFunc func(message string, err error, tags map[string]string, args ...any) error

// FuncSink adapts a pair of functions to core.Sink. A nil function ignores
// the calls it would receive.
type FuncSink struct {
	label     string
	render    RenderFunc
	analytics AnalyticsFunc
}

// NewFuncSink creates a sink from functions. An empty label gets the default.
func NewFuncSink(label string, render RenderFunc, analytics AnalyticsFunc) *FuncSink {
	s := &FuncSink{label: label, render: render, analytics: analytics}
	if s.label == "" {
		s.label = DefaultLabel(s)
	}
	return s
}

func (s *FuncSink) Label() string {
	return s.label
}

func (s *FuncSink) Render(level core.Level, message string, err error, args ...any) error {
	if s.render == nil {
		return nil
	}
	return s.render(level, message, err, args...)
}

func (s *FuncSink) RenderAnalytics(message string, err error, tags map[string]string, args ...any) error {
	if s.analytics == nil {
		return nil
	}
	return s.analytics(message, err, tags, args...)
}
