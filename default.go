package timber

import (
	"sync/atomic"
)

var std atomic.Pointer[Registry]

// Init installs r as the default registry used by the package-level
// functions. It succeeds once; later calls return ErrAlreadyInitialized.
func Init(r *Registry) error {
	if r == nil {
		return ErrNilRegistry
	}
	if !std.CompareAndSwap(nil, r) {
		return ErrAlreadyInitialized
	}
	return nil
}

// Default returns the registry installed by Init, or nil.
func Default() *Registry {
	return std.Load()
}

// Error calls Error on the default registry.
func Error(message string, args ...any) {
	if r := std.Load(); r != nil {
		r.Error(message, args...)
	}
}

// ErrorWith calls ErrorWith on the default registry.
func ErrorWith(err error, message string, args ...any) {
	if r := std.Load(); r != nil {
		r.ErrorWith(err, message, args...)
	}
}

// ErrorErr calls ErrorErr on the default registry.
func ErrorErr(err error) {
	if r := std.Load(); r != nil {
		r.ErrorErr(err)
	}
}

// Debug calls Debug on the default registry.
func Debug(message string, args ...any) {
	if r := std.Load(); r != nil {
		r.Debug(message, args...)
	}
}

// DebugWith calls DebugWith on the default registry.
func DebugWith(err error, message string, args ...any) {
	if r := std.Load(); r != nil {
		r.DebugWith(err, message, args...)
	}
}

// DebugErr calls DebugErr on the default registry.
func DebugErr(err error) {
	if r := std.Load(); r != nil {
		r.DebugErr(err)
	}
}

// Info calls Info on the default registry.
func Info(message string, args ...any) {
	if r := std.Load(); r != nil {
		r.Info(message, args...)
	}
}

// InfoWith calls InfoWith on the default registry.
func InfoWith(err error, message string, args ...any) {
	if r := std.Load(); r != nil {
		r.InfoWith(err, message, args...)
	}
}

// InfoErr calls InfoErr on the default registry.
func InfoErr(err error) {
	if r := std.Load(); r != nil {
		r.InfoErr(err)
	}
}

// Verbose calls Verbose on the default registry.
func Verbose(message string, args ...any) {
	if r := std.Load(); r != nil {
		r.Verbose(message, args...)
	}
}

// VerboseWith calls VerboseWith on the default registry.
func VerboseWith(err error, message string, args ...any) {
	if r := std.Load(); r != nil {
		r.VerboseWith(err, message, args...)
	}
}

// VerboseErr calls VerboseErr on the default registry.
func VerboseErr(err error) {
	if r := std.Load(); r != nil {
		r.VerboseErr(err)
	}
}

// Warn calls Warn on the default registry.
func Warn(message string, args ...any) {
	if r := std.Load(); r != nil {
		r.Warn(message, args...)
	}
}

// WarnWith calls WarnWith on the default registry.
func WarnWith(err error, message string, args ...any) {
	if r := std.Load(); r != nil {
		r.WarnWith(err, message, args...)
	}
}

// WarnErr calls WarnErr on the default registry.
func WarnErr(err error) {
	if r := std.Load(); r != nil {
		r.WarnErr(err)
	}
}

// Assert calls Assert on the default registry.
func Assert(message string, args ...any) {
	if r := std.Load(); r != nil {
		r.Assert(message, args...)
	}
}

// AssertWith calls AssertWith on the default registry.
func AssertWith(err error, message string, args ...any) {
	if r := std.Load(); r != nil {
		r.AssertWith(err, message, args...)
	}
}

// AssertErr calls AssertErr on the default registry.
func AssertErr(err error) {
	if r := std.Load(); r != nil {
		r.AssertErr(err)
	}
}

// Analytics calls Analytics on the default registry.
func Analytics(message string, args ...any) {
	if r := std.Load(); r != nil {
		r.Analytics(message, args...)
	}
}

// AnalyticsWith calls AnalyticsWith on the default registry.
func AnalyticsWith(err error, message string, args ...any) {
	if r := std.Load(); r != nil {
		r.AnalyticsWith(err, message, args...)
	}
}

// AnalyticsTags calls AnalyticsTags on the default registry.
func AnalyticsTags(tags map[string]string, message string, args ...any) {
	if r := std.Load(); r != nil {
		r.AnalyticsTags(tags, message, args...)
	}
}

// AnalyticsTagsWith calls AnalyticsTagsWith on the default registry.
func AnalyticsTagsWith(err error, tags map[string]string, message string, args ...any) {
	if r := std.Load(); r != nil {
		r.AnalyticsTagsWith(err, tags, message, args...)
	}
}

// AnalyticsErr calls AnalyticsErr on the default registry.
func AnalyticsErr(err error) {
	if r := std.Load(); r != nil {
		r.AnalyticsErr(err)
	}
}
