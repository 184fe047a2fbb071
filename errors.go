package timber

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNilSink is returned when registering a nil sink or a nil pointer sink.
	ErrNilSink = errors.New("timber: nil sink")

	// ErrUncomparableSink is returned for sinks that cannot be tracked by
	// identity, such as struct values holding maps or slices.
	ErrUncomparableSink = errors.New("timber: sink type is not comparable")

	// ErrNilRegistry is returned by Init when given nil.
	ErrNilRegistry = errors.New("timber: nil registry")

	// ErrAlreadyInitialized is returned by Init after the default registry
	// has been installed.
	ErrAlreadyInitialized = errors.New("timber: default registry already initialized")

	// ErrSinkPanic wraps values recovered from a panicking sink.
	ErrSinkPanic = errors.New("sink panicked")
)

// SinkError is one sink's failure during a dispatch. Dispatch aggregates these
// with multierr; use multierr.Errors to list them.
type SinkError struct {
	Label string
	Err   error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("sink %s: %v", e.Label, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}
