// Package selflog reports problems inside timber itself: sinks that fail or
// panic during dispatch, templates that cannot be formatted, registry
// changes. It is silent until enabled.
//
//	selflog.Enable(os.Stderr)
//	defer selflog.Disable()
//
// Lines look like:
//
//	2026-01-29T15:30:45Z [registry] sink [ConsoleSink.#3] failed: write: broken pipe
//
// Setting TIMBER_SELFLOG to "stderr", "stdout" or a file path enables it at
// startup.
package selflog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// output is either a writer or a callback; exactly one field is set.
type output struct {
	w  io.Writer
	fn func(string)
}

var current atomic.Pointer[output]

// Enable sends diagnostics to w. w must be safe for concurrent use; wrap it
// with Sync otherwise.
func Enable(w io.Writer) {
	if w == nil {
		return
	}
	current.Store(&output{w: w})
}

// EnableFunc sends each formatted diagnostic line to fn.
func EnableFunc(fn func(string)) {
	if fn == nil {
		return
	}
	current.Store(&output{fn: fn})
}

// Disable turns diagnostics off.
func Disable() {
	current.Store(nil)
}

// IsEnabled reports whether diagnostics are being written. Callers use it to
// skip building expensive arguments.
func IsEnabled() bool {
	return current.Load() != nil
}

// Printf writes one diagnostic line. By convention format starts with the
// component in brackets, e.g. "[console] write failed: %v".
func Printf(format string, args ...any) {
	out := current.Load()
	if out == nil {
		return
	}

	line := time.Now().UTC().Format(time.RFC3339) + " " + fmt.Sprintf(format, args...)
	if out.fn != nil {
		out.fn(line)
		return
	}
	fmt.Fprintln(out.w, line)
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Sync serializes writes to w.
func Sync(w io.Writer) io.Writer {
	return &syncWriter{w: w}
}

func init() {
	switch dest := os.Getenv("TIMBER_SELFLOG"); dest {
	case "":
	case "stderr":
		Enable(os.Stderr)
	case "stdout":
		Enable(os.Stdout)
	default:
		f, err := os.OpenFile(dest, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			Enable(Sync(f))
		}
	}
}
