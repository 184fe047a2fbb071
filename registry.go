// Package timber fans log and analytics calls out to a set of sinks.
//
// A Registry owns the set. Every call made through it is delivered
// synchronously to every registered sink; the registry performs no level
// filtering, buffering or retries.
//
//	r := timber.New(timber.WithSink(sinks.NewConsoleSink()))
//	r.Warn("disk at %d%%", 87)
//	r.AnalyticsTags(map[string]string{"screen": "home"}, "opened")
//
// A failing or panicking sink never prevents delivery to the others; its
// failure is reported to selflog and returned by Dispatch.
package timber

import (
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/willibrandon/timber/core"
	"github.com/willibrandon/timber/selflog"
)

// Registry is a set of sinks plus the dispatch that fans calls out to them.
// It is safe for concurrent use.
type Registry struct {
	tag string

	mu sync.RWMutex
	// sinks is replaced, never mutated in place, so a dispatch can iterate
	// the slice it loaded without holding mu.
	sinks []core.Sink
	index map[core.Sink]struct{}
}

// New creates a registry. Sinks passed with WithSink that cannot be
// registered are reported to selflog and skipped; use Build to get the error.
func New(opts ...Option) *Registry {
	r, err := Build(opts...)
	if err != nil && selflog.IsEnabled() {
		selflog.Printf("[registry] %s: %v", r.tag, err)
	}
	return r
}

// Build creates a registry and returns the first registration error, if any,
// along with the registry holding every sink that did register.
func Build(opts ...Option) (*Registry, error) {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}

	name := c.name
	if name == "" {
		name = "Registry"
	}
	r := &Registry{
		tag:   fmt.Sprintf("[%s.#%s]", name, uuid.NewString()[:8]),
		index: make(map[core.Sink]struct{}),
	}

	var firstErr error
	for _, sink := range c.sinks {
		if err := r.Register(sink); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return r, firstErr
}

// Tag identifies the registry in diagnostics.
func (r *Registry) Tag() string {
	return r.tag
}

// Register adds sinks to the set. A sink already present is left as is.
// Registration stops at the first nil or non-comparable sink.
func (r *Registry) Register(sinks ...core.Sink) error {
	for _, sink := range sinks {
		if err := r.register(sink); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) register(sink core.Sink) error {
	if sink == nil {
		return ErrNilSink
	}
	if v := reflect.ValueOf(sink); v.Kind() == reflect.Pointer && v.IsNil() {
		return errors.Wrapf(ErrNilSink, "%T", sink)
	}
	if !reflect.TypeOf(sink).Comparable() {
		return errors.Wrapf(ErrUncomparableSink, "%T", sink)
	}

	r.mu.Lock()
	if _, exists := r.index[sink]; exists {
		r.mu.Unlock()
		return nil
	}
	next := make([]core.Sink, len(r.sinks), len(r.sinks)+1)
	copy(next, r.sinks)
	r.sinks = append(next, sink)
	r.index[sink] = struct{}{}
	r.mu.Unlock()

	if selflog.IsEnabled() {
		selflog.Printf("[registry] %s added sink %s", r.tag, labelOf(sink))
	}
	return nil
}

// Unregister removes sink and reports whether it was registered.
func (r *Registry) Unregister(sink core.Sink) bool {
	if sink == nil || !reflect.TypeOf(sink).Comparable() {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[sink]; !exists {
		return false
	}
	delete(r.index, sink)
	next := make([]core.Sink, 0, len(r.sinks)-1)
	for _, s := range r.sinks {
		if s != sink {
			next = append(next, s)
		}
	}
	r.sinks = next
	return true
}

// Clear removes every sink.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.sinks = nil
	r.index = make(map[core.Sink]struct{})
	r.mu.Unlock()

	if selflog.IsEnabled() {
		selflog.Printf("[registry] %s sinks cleared", r.tag)
	}
}

// Len returns the number of registered sinks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sinks)
}

// Sinks returns the registered sinks in registration order.
func (r *Registry) Sinks() []core.Sink {
	snapshot := r.snapshot()
	out := make([]core.Sink, len(snapshot))
	copy(out, snapshot)
	return out
}

func (r *Registry) snapshot() []core.Sink {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sinks
}

// Dispatch delivers one call to every sink registered when the call starts.
// AnalyticsLevel goes to RenderAnalytics, every other level to Render.
// It returns after all sinks have returned; the error aggregates each failed
// sink as a *SinkError.
func (r *Registry) Dispatch(level core.Level, message string, err error, tags map[string]string, args ...any) error {
	sinks := r.snapshot()
	if len(sinks) == 0 {
		return nil
	}

	analytics := level == core.AnalyticsLevel
	if analytics && tags == nil {
		tags = map[string]string{}
	}

	var failures error
	for _, sink := range sinks {
		if failure := deliver(sink, analytics, level, message, err, tags, args); failure != nil {
			if selflog.IsEnabled() {
				selflog.Printf("[registry] %s %v", r.tag, failure)
			}
			failures = multierr.Append(failures, failure)
		}
	}
	return failures
}

func deliver(sink core.Sink, analytics bool, level core.Level, message string, err error, tags map[string]string, args []any) (failure error) {
	defer func() {
		if p := recover(); p != nil {
			failure = &SinkError{Label: labelOf(sink), Err: errors.Wrapf(ErrSinkPanic, "%v", p)}
		}
	}()

	var renderErr error
	if analytics {
		renderErr = sink.RenderAnalytics(message, err, tags, args...)
	} else {
		renderErr = sink.Render(level, message, err, args...)
	}
	if renderErr != nil {
		return &SinkError{Label: labelOf(sink), Err: renderErr}
	}
	return nil
}

// Close closes every registered sink that implements io.Closer. Sinks stay
// registered.
func (r *Registry) Close() error {
	var errs error
	for _, sink := range r.snapshot() {
		closer, ok := sink.(io.Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil {
			errs = multierr.Append(errs, &SinkError{Label: labelOf(sink), Err: err})
		}
	}
	return errs
}

// labelOf returns the sink's label, or its type name when Label panics.
func labelOf(sink core.Sink) (label string) {
	defer func() {
		if recover() != nil {
			label = fmt.Sprintf("%T", sink)
		}
	}()
	return sink.Label()
}
