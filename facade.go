package timber

import (
	"github.com/willibrandon/timber/core"
)

// The facade methods ignore the aggregate error returned by Dispatch; sink
// failures still reach selflog. Call Dispatch directly to observe them.

// Error dispatches message at ErrorLevel.
func (r *Registry) Error(message string, args ...any) {
	_ = r.Dispatch(core.ErrorLevel, message, nil, nil, args...)
}

// ErrorWith is Error with an attached error.
func (r *Registry) ErrorWith(err error, message string, args ...any) {
	_ = r.Dispatch(core.ErrorLevel, message, err, nil, args...)
}

// ErrorErr dispatches err alone at ErrorLevel.
func (r *Registry) ErrorErr(err error) {
	_ = r.Dispatch(core.ErrorLevel, "", err, nil)
}

// Debug dispatches message at DebugLevel.
func (r *Registry) Debug(message string, args ...any) {
	_ = r.Dispatch(core.DebugLevel, message, nil, nil, args...)
}

// DebugWith is Debug with an attached error.
func (r *Registry) DebugWith(err error, message string, args ...any) {
	_ = r.Dispatch(core.DebugLevel, message, err, nil, args...)
}

// DebugErr dispatches err alone at DebugLevel.
func (r *Registry) DebugErr(err error) {
	_ = r.Dispatch(core.DebugLevel, "", err, nil)
}

// Info dispatches message at InfoLevel.
func (r *Registry) Info(message string, args ...any) {
	_ = r.Dispatch(core.InfoLevel, message, nil, nil, args...)
}

// InfoWith is Info with an attached error.
func (r *Registry) InfoWith(err error, message string, args ...any) {
	_ = r.Dispatch(core.InfoLevel, message, err, nil, args...)
}

// InfoErr dispatches err alone at InfoLevel.
func (r *Registry) InfoErr(err error) {
	_ = r.Dispatch(core.InfoLevel, "", err, nil)
}

// Verbose dispatches message at VerboseLevel.
func (r *Registry) Verbose(message string, args ...any) {
	_ = r.Dispatch(core.VerboseLevel, message, nil, nil, args...)
}

// VerboseWith is Verbose with an attached error.
func (r *Registry) VerboseWith(err error, message string, args ...any) {
	_ = r.Dispatch(core.VerboseLevel, message, err, nil, args...)
}

// VerboseErr dispatches err alone at VerboseLevel.
func (r *Registry) VerboseErr(err error) {
	_ = r.Dispatch(core.VerboseLevel, "", err, nil)
}

// Warn dispatches message at WarnLevel.
func (r *Registry) Warn(message string, args ...any) {
	_ = r.Dispatch(core.WarnLevel, message, nil, nil, args...)
}

// WarnWith is Warn with an attached error.
func (r *Registry) WarnWith(err error, message string, args ...any) {
	_ = r.Dispatch(core.WarnLevel, message, err, nil, args...)
}

// WarnErr dispatches err alone at WarnLevel.
func (r *Registry) WarnErr(err error) {
	_ = r.Dispatch(core.WarnLevel, "", err, nil)
}

// Assert dispatches message at AssertLevel.
func (r *Registry) Assert(message string, args ...any) {
	_ = r.Dispatch(core.AssertLevel, message, nil, nil, args...)
}

// AssertWith is Assert with an attached error.
func (r *Registry) AssertWith(err error, message string, args ...any) {
	_ = r.Dispatch(core.AssertLevel, message, err, nil, args...)
}

// AssertErr dispatches err alone at AssertLevel.
func (r *Registry) AssertErr(err error) {
	_ = r.Dispatch(core.AssertLevel, "", err, nil)
}

// Analytics dispatches an analytics event with no tags.
func (r *Registry) Analytics(message string, args ...any) {
	_ = r.Dispatch(core.AnalyticsLevel, message, nil, nil, args...)
}

// AnalyticsWith dispatches an analytics event with an attached error.
func (r *Registry) AnalyticsWith(err error, message string, args ...any) {
	_ = r.Dispatch(core.AnalyticsLevel, message, err, nil, args...)
}

// AnalyticsTags dispatches an analytics event carrying tags.
func (r *Registry) AnalyticsTags(tags map[string]string, message string, args ...any) {
	_ = r.Dispatch(core.AnalyticsLevel, message, nil, tags, args...)
}

// AnalyticsTagsWith dispatches an analytics event carrying tags and an error.
func (r *Registry) AnalyticsTagsWith(err error, tags map[string]string, message string, args ...any) {
	_ = r.Dispatch(core.AnalyticsLevel, message, err, tags, args...)
}

// AnalyticsErr dispatches err alone as an analytics event.
func (r *Registry) AnalyticsErr(err error) {
	_ = r.Dispatch(core.AnalyticsLevel, "", err, nil)
}
