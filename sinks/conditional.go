package sinks

import (
	"io"

	"github.com/willibrandon/timber/core"
	"github.com/willibrandon/timber/selflog"
)

// ConditionalSink forwards calls to a target sink when a level predicate
// holds. Analytics calls are tested with core.AnalyticsLevel.
type ConditionalSink struct {
	label     string
	predicate func(core.Level) bool
	target    core.Sink
}

// NewConditionalSink creates a sink that only forwards calls whose level
// matches the predicate.
func NewConditionalSink(predicate func(core.Level) bool, target core.Sink) *ConditionalSink {
	if predicate == nil {
		panic("predicate cannot be nil")
	}
	if target == nil {
		panic("target sink cannot be nil")
	}

	return &ConditionalSink{
		label:     "[ConditionalSink]" + target.Label(),
		predicate: predicate,
		target:    target,
	}
}

// Label identifies the sink by its target.
func (s *ConditionalSink) Label() string {
	return s.label
}

// Target returns the wrapped sink.
func (s *ConditionalSink) Target() core.Sink {
	return s.target
}

func (s *ConditionalSink) Render(level core.Level, message string, err error, args ...any) error {
	if !s.matches(level) {
		return nil
	}
	return s.target.Render(level, message, err, args...)
}

func (s *ConditionalSink) RenderAnalytics(message string, err error, tags map[string]string, args ...any) error {
	if !s.matches(core.AnalyticsLevel) {
		return nil
	}
	return s.target.RenderAnalytics(message, err, tags, args...)
}

// matches evaluates the predicate; a panicking predicate drops the call.
func (s *ConditionalSink) matches(level core.Level) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if selflog.IsEnabled() {
				selflog.Printf("[conditional] %s predicate panic: %v", s.label, r)
			}
			ok = false
		}
	}()
	return s.predicate(level)
}

// Close closes the target sink.
func (s *ConditionalSink) Close() error {
	closer, ok := s.target.(io.Closer)
	if !ok {
		return nil
	}
	if err := closer.Close(); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[conditional] %s failed to close target sink: %v", s.label, err)
		}
		return err
	}
	return nil
}

// LevelPredicate matches levels at or above minLevel by priority.
func LevelPredicate(minLevel core.Level) func(core.Level) bool {
	return func(level core.Level) bool {
		return level >= minLevel
	}
}

// OnlyLevels matches exactly the given levels.
func OnlyLevels(levels ...core.Level) func(core.Level) bool {
	set := make(map[core.Level]struct{}, len(levels))
	for _, l := range levels {
		set[l] = struct{}{}
	}
	return func(level core.Level) bool {
		_, ok := set[level]
		return ok
	}
}

// NotPredicate inverts a predicate.
func NotPredicate(predicate func(core.Level) bool) func(core.Level) bool {
	return func(level core.Level) bool {
		return !predicate(level)
	}
}
