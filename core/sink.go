package core

// Sink renders calls fanned out by a registry to one concrete medium.
//
// Implementations must be comparable (pointer receivers in practice) because
// a registry tracks sinks by identity.
type Sink interface {
	// Label identifies the sink in diagnostics.
	Label() string

	// Render writes a call at any level other than AnalyticsLevel.
	// A template that cannot be formatted is written raw rather than
	// reported; the returned error is reserved for medium failures.
	Render(level Level, message string, err error, args ...any) error

	// RenderAnalytics writes an analytics call with its tags.
	RenderAnalytics(message string, err error, tags map[string]string, args ...any) error
}
