package sinks

import (
	"errors"
	"syscall"

	"go.uber.org/zap"

	"github.com/willibrandon/timber/core"
	"github.com/willibrandon/timber/format"
)

// ZapSink forwards calls to a zap logger.
//
// Verbose and Debug map to zap's Debug, Assert to Error with assert=true.
// Analytics calls are logged at Info with analytics=true and one string
// field per tag.
type ZapSink struct {
	label  string
	logger *zap.Logger
}

// NewZapSink creates a sink writing to logger.
func NewZapSink(logger *zap.Logger) *ZapSink {
	s := &ZapSink{logger: logger}
	s.label = DefaultLabel(s)
	return s
}

func (s *ZapSink) Label() string {
	return s.label
}

func (s *ZapSink) Render(level core.Level, message string, err error, args ...any) error {
	msg := format.Lenient(message, args...)

	var fields []zap.Field
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	switch level {
	case core.VerboseLevel, core.DebugLevel:
		s.logger.Debug(msg, fields...)
	case core.InfoLevel:
		s.logger.Info(msg, fields...)
	case core.WarnLevel:
		s.logger.Warn(msg, fields...)
	case core.ErrorLevel:
		s.logger.Error(msg, fields...)
	case core.AssertLevel:
		s.logger.Error(msg, append(fields, zap.Bool("assert", true))...)
	default:
		s.logger.Info(msg, fields...)
	}
	return nil
}

func (s *ZapSink) RenderAnalytics(message string, err error, tags map[string]string, args ...any) error {
	fields := make([]zap.Field, 0, len(tags)+2)
	fields = append(fields, zap.Bool("analytics", true))
	for _, k := range sortedKeys(tags) {
		fields = append(fields, zap.String(k, tags[k]))
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	s.logger.Info(format.Lenient(message, args...), fields...)
	return nil
}

// Close flushes buffered entries. Sync errors from terminals, which cannot
// be synced, are ignored.
func (s *ZapSink) Close() error {
	err := s.logger.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
