package sinks

import (
	"github.com/go-logr/logr"

	"github.com/willibrandon/timber/core"
	"github.com/willibrandon/timber/format"
)

// LogrSink forwards calls to a logr.Logger.
//
// Error and Assert go through logger.Error; the other levels use V-levels:
// Warn and Info V(0), Debug V(1), Verbose V(2).
type LogrSink struct {
	label  string
	logger logr.Logger
}

// NewLogrSink creates a sink writing to logger.
func NewLogrSink(logger logr.Logger) *LogrSink {
	s := &LogrSink{logger: logger}
	s.label = DefaultLabel(s)
	return s
}

func (s *LogrSink) Label() string {
	return s.label
}

func (s *LogrSink) Render(level core.Level, message string, err error, args ...any) error {
	msg := format.Lenient(message, args...)

	switch level {
	case core.ErrorLevel:
		s.logger.Error(err, msg)
	case core.AssertLevel:
		s.logger.Error(err, msg, "assert", true)
	default:
		var kv []any
		if level == core.WarnLevel {
			kv = append(kv, "warning", true)
		}
		if err != nil {
			kv = append(kv, "error", err)
		}
		s.logger.V(logrVerbosity(level)).Info(msg, kv...)
	}
	return nil
}

func (s *LogrSink) RenderAnalytics(message string, err error, tags map[string]string, args ...any) error {
	kv := make([]any, 0, 2*len(tags)+4)
	kv = append(kv, "analytics", true)
	for _, k := range sortedKeys(tags) {
		kv = append(kv, k, tags[k])
	}
	if err != nil {
		kv = append(kv, "error", err)
	}
	s.logger.Info(format.Lenient(message, args...), kv...)
	return nil
}

func logrVerbosity(level core.Level) int {
	switch level {
	case core.DebugLevel:
		return 1
	case core.VerboseLevel:
		return 2
	default:
		return 0
	}
}
