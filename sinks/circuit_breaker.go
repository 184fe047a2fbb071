package sinks

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/willibrandon/timber/core"
	"github.com/willibrandon/timber/selflog"
)

// CircuitState represents the state of a circuit breaker.
type CircuitState int32

const (
	// CircuitClosed lets every call through.
	CircuitClosed CircuitState = iota
	// CircuitOpen skips the wrapped sink.
	CircuitOpen
	// CircuitHalfOpen lets calls through to probe the wrapped sink.
	CircuitHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreakerSink stops calling a sink that keeps failing. While open,
// calls go to the fallback sink if one is set and are dropped otherwise.
type CircuitBreakerSink struct {
	wrapped          core.Sink
	label            string
	failureThreshold int
	successThreshold int
	resetTimeout     time.Duration

	state        atomic.Int32 // CircuitState
	failures     atomic.Int32
	successes    atomic.Int32
	lastFailTime atomic.Int64 // Unix nano

	mu            sync.Mutex // state transitions
	fallback      core.Sink
	onStateChange func(from, to CircuitState)
}

// CircuitBreakerOptions configures a circuit breaker sink.
type CircuitBreakerOptions struct {
	FailureThreshold int           // consecutive failures before opening
	SuccessThreshold int           // successes in half-open before closing
	ResetTimeout     time.Duration // time before probing an open circuit
	FallbackSink     core.Sink
	OnStateChange    func(from, to CircuitState)
}

// NewCircuitBreakerSink creates a circuit breaker with default options.
func NewCircuitBreakerSink(wrapped core.Sink) *CircuitBreakerSink {
	return NewCircuitBreakerSinkWithOptions(wrapped, CircuitBreakerOptions{})
}

// NewCircuitBreakerSinkWithOptions creates a circuit breaker with custom options.
func NewCircuitBreakerSinkWithOptions(wrapped core.Sink, opts CircuitBreakerOptions) *CircuitBreakerSink {
	if opts.FailureThreshold <= 0 {
		opts.FailureThreshold = 5
	}
	if opts.SuccessThreshold <= 0 {
		opts.SuccessThreshold = 2
	}
	if opts.ResetTimeout <= 0 {
		opts.ResetTimeout = 30 * time.Second
	}

	cb := &CircuitBreakerSink{
		wrapped:          wrapped,
		label:            "[CircuitBreakerSink]" + wrapped.Label(),
		failureThreshold: opts.FailureThreshold,
		successThreshold: opts.SuccessThreshold,
		resetTimeout:     opts.ResetTimeout,
		fallback:         opts.FallbackSink,
		onStateChange:    opts.OnStateChange,
	}

	cb.state.Store(int32(CircuitClosed))
	return cb
}

func (cb *CircuitBreakerSink) Label() string {
	return cb.label
}

func (cb *CircuitBreakerSink) Render(level core.Level, message string, err error, args ...any) error {
	return cb.call(func(s core.Sink) error {
		return s.Render(level, message, err, args...)
	})
}

func (cb *CircuitBreakerSink) RenderAnalytics(message string, err error, tags map[string]string, args ...any) error {
	return cb.call(func(s core.Sink) error {
		return s.RenderAnalytics(message, err, tags, args...)
	})
}

func (cb *CircuitBreakerSink) call(render func(core.Sink) error) error {
	if cb.getState() == CircuitOpen {
		if !cb.shouldAttemptReset() {
			if cb.fallback != nil {
				return render(cb.fallback)
			}
			if selflog.IsEnabled() {
				selflog.Printf("[circuit] %s dropping call, circuit open", cb.label)
			}
			return nil
		}
		cb.transitionToHalfOpen()
	}
	return cb.attempt(render)
}

// attempt calls the wrapped sink and records the outcome. A panic counts as
// a failure and is returned as an error.
func (cb *CircuitBreakerSink) attempt(render func(core.Sink) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("wrapped sink panicked: %v", r)
		}
		if err != nil {
			cb.recordFailure()
		} else {
			cb.recordSuccess()
		}
	}()
	return render(cb.wrapped)
}

func (cb *CircuitBreakerSink) recordSuccess() {
	switch cb.getState() {
	case CircuitHalfOpen:
		if int(cb.successes.Add(1)) >= cb.successThreshold {
			cb.transitionTo(CircuitClosed)
		}
	case CircuitClosed:
		cb.failures.Store(0)
	}
}

func (cb *CircuitBreakerSink) recordFailure() {
	cb.lastFailTime.Store(time.Now().UnixNano())

	switch cb.getState() {
	case CircuitClosed:
		if int(cb.failures.Add(1)) >= cb.failureThreshold {
			cb.transitionTo(CircuitOpen)
		}
	case CircuitHalfOpen:
		cb.transitionTo(CircuitOpen)
	}
}

func (cb *CircuitBreakerSink) shouldAttemptReset() bool {
	lastFail := cb.lastFailTime.Load()
	if lastFail == 0 {
		return false
	}
	return time.Since(time.Unix(0, lastFail)) >= cb.resetTimeout
}

func (cb *CircuitBreakerSink) transitionToHalfOpen() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if CircuitState(cb.state.Load()) == CircuitOpen {
		cb.setStateLocked(CircuitOpen, CircuitHalfOpen)
	}
}

func (cb *CircuitBreakerSink) transitionTo(to CircuitState) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	from := CircuitState(cb.state.Load())
	if from == to {
		return
	}
	cb.setStateLocked(from, to)
	if to == CircuitClosed {
		cb.lastFailTime.Store(0)
	}
}

func (cb *CircuitBreakerSink) setStateLocked(from, to CircuitState) {
	cb.state.Store(int32(to))
	cb.failures.Store(0)
	cb.successes.Store(0)

	if selflog.IsEnabled() {
		selflog.Printf("[circuit] %s circuit %s (was %s)", cb.label, to, from)
	}
	if cb.onStateChange != nil {
		cb.onStateChange(from, to)
	}
}

func (cb *CircuitBreakerSink) getState() CircuitState {
	return CircuitState(cb.state.Load())
}

// State returns the current circuit state.
func (cb *CircuitBreakerSink) State() CircuitState {
	return cb.getState()
}

// Stats returns current circuit breaker statistics.
func (cb *CircuitBreakerSink) Stats() CircuitBreakerStats {
	stats := CircuitBreakerStats{
		State:     cb.getState(),
		Failures:  cb.failures.Load(),
		Successes: cb.successes.Load(),
	}
	if last := cb.lastFailTime.Load(); last != 0 {
		stats.LastFailTime = time.Unix(0, last)
	}
	return stats
}

// CircuitBreakerStats contains circuit breaker statistics.
type CircuitBreakerStats struct {
	State        CircuitState
	Failures     int32
	Successes    int32
	LastFailTime time.Time // zero until the first failure
}

// Close closes the wrapped sink.
func (cb *CircuitBreakerSink) Close() error {
	if closer, ok := cb.wrapped.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
