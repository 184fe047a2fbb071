package core

// LogValue is an optional interface for argument types that want a different
// representation in rendered messages than their default string form.
type LogValue interface {
	// LogValue returns the value to render in place of the receiver.
	LogValue() any
}
