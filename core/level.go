package core

import (
	"strings"

	"github.com/pkg/errors"
)

// Level is the severity or category attached to a call. The numeric value
// matches the Android log priority so consumers can order levels; the
// registry itself never filters on it.
type Level int

const (
	// VerboseLevel is the most detailed level.
	VerboseLevel Level = 2

	// DebugLevel is for debugging information.
	DebugLevel Level = 3

	// InfoLevel is for informational messages.
	InfoLevel Level = 4

	// WarnLevel is for warnings.
	WarnLevel Level = 5

	// ErrorLevel is for errors.
	ErrorLevel Level = 6

	// AssertLevel is for conditions that should never happen.
	AssertLevel Level = 7

	// AnalyticsLevel routes a call to RenderAnalytics instead of Render.
	AnalyticsLevel Level = 13
)

// Levels lists every level in declaration order of the facade families.
var Levels = []Level{
	AnalyticsLevel,
	AssertLevel,
	DebugLevel,
	ErrorLevel,
	InfoLevel,
	VerboseLevel,
	WarnLevel,
}

// String returns the upper-case level name used by console output.
func (l Level) String() string {
	switch l {
	case AnalyticsLevel:
		return "ANALYTICS"
	case AssertLevel:
		return "ASSERT"
	case DebugLevel:
		return "DEBUG"
	case ErrorLevel:
		return "ERROR"
	case InfoLevel:
		return "INFO"
	case VerboseLevel:
		return "VERBOSE"
	case WarnLevel:
		return "WARN"
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether l is one of the declared levels.
func (l Level) IsValid() bool {
	return l.String() != "UNKNOWN"
}

// ParseLevel parses a level name or its one-letter alias.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "analytics", "a":
		return AnalyticsLevel, nil
	case "assert", "wtf":
		return AssertLevel, nil
	case "debug", "d":
		return DebugLevel, nil
	case "error", "e":
		return ErrorLevel, nil
	case "info", "information", "i":
		return InfoLevel, nil
	case "verbose", "v":
		return VerboseLevel, nil
	case "warn", "warning", "w":
		return WarnLevel, nil
	default:
		return 0, errors.Errorf("unknown level: %q", s)
	}
}
