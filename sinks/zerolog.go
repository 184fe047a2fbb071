package sinks

import (
	"github.com/rs/zerolog"

	"github.com/willibrandon/timber/core"
	"github.com/willibrandon/timber/format"
)

// ZerologSink forwards calls to a zerolog logger. Verbose maps to Trace,
// which zerolog drops unless the global level allows it.
type ZerologSink struct {
	label  string
	logger zerolog.Logger
}

// NewZerologSink creates a sink writing to logger.
func NewZerologSink(logger zerolog.Logger) *ZerologSink {
	s := &ZerologSink{logger: logger}
	s.label = DefaultLabel(s)
	return s
}

func (s *ZerologSink) Label() string {
	return s.label
}

func (s *ZerologSink) Render(level core.Level, message string, err error, args ...any) error {
	ev := s.logger.WithLevel(zerologLevel(level))
	if level == core.AssertLevel {
		ev = ev.Bool("assert", true)
	}
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(format.Lenient(message, args...))
	return nil
}

func (s *ZerologSink) RenderAnalytics(message string, err error, tags map[string]string, args ...any) error {
	ev := s.logger.Info().Bool("analytics", true)
	for _, k := range sortedKeys(tags) {
		ev = ev.Str(k, tags[k])
	}
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(format.Lenient(message, args...))
	return nil
}

func zerologLevel(level core.Level) zerolog.Level {
	switch level {
	case core.VerboseLevel:
		return zerolog.TraceLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel, core.AssertLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
