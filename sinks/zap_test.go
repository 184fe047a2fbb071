package sinks

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/willibrandon/timber/core"
)

func TestZapSinkLevels(t *testing.T) {
	tests := []struct {
		level    core.Level
		expected zapcore.Level
	}{
		{core.VerboseLevel, zapcore.DebugLevel},
		{core.DebugLevel, zapcore.DebugLevel},
		{core.InfoLevel, zapcore.InfoLevel},
		{core.WarnLevel, zapcore.WarnLevel},
		{core.ErrorLevel, zapcore.ErrorLevel},
		{core.AssertLevel, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			obs, logs := observer.New(zapcore.DebugLevel)
			sink := NewZapSink(zap.New(obs))

			if err := sink.Render(tt.level, "disk at %d%%", nil, 87); err != nil {
				t.Fatal(err)
			}

			entries := logs.All()
			if len(entries) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(entries))
			}
			if entries[0].Level != tt.expected {
				t.Errorf("expected level %v, got %v", tt.expected, entries[0].Level)
			}
			if entries[0].Message != "disk at 87%" {
				t.Errorf("unexpected message %q", entries[0].Message)
			}
			_, hasAssert := entries[0].ContextMap()["assert"]
			if hasAssert != (tt.level == core.AssertLevel) {
				t.Errorf("assert field present=%v for %v", hasAssert, tt.level)
			}
		})
	}
}

func TestZapSinkError(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	sink := NewZapSink(zap.New(obs))

	if err := sink.Render(core.ErrorLevel, "save failed", errors.New("boom")); err != nil {
		t.Fatal(err)
	}

	fields := logs.All()[0].ContextMap()
	if fields["error"] != "boom" {
		t.Errorf("expected error field, got %v", fields)
	}
}

func TestZapSinkAnalytics(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	sink := NewZapSink(zap.New(obs))

	tags := map[string]string{"screen": "home", "variant": "b"}
	if err := sink.RenderAnalytics("opened %s", nil, tags, "app"); err != nil {
		t.Fatal(err)
	}

	entry := logs.All()[0]
	if entry.Level != zapcore.InfoLevel {
		t.Errorf("expected info level, got %v", entry.Level)
	}
	if entry.Message != "opened app" {
		t.Errorf("unexpected message %q", entry.Message)
	}
	fields := entry.ContextMap()
	if fields["analytics"] != true {
		t.Errorf("expected analytics=true, got %v", fields["analytics"])
	}
	if fields["screen"] != "home" || fields["variant"] != "b" {
		t.Errorf("expected tags as fields, got %v", fields)
	}
}

func TestZapSinkClose(t *testing.T) {
	obs, _ := observer.New(zapcore.DebugLevel)
	sink := NewZapSink(zap.New(obs))
	if err := sink.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
