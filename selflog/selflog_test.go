package selflog_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/willibrandon/timber/selflog"
)

func TestSelfLog(t *testing.T) {
	selflog.Disable()
	defer selflog.Disable()

	t.Run("disabled by default", func(t *testing.T) {
		if selflog.IsEnabled() {
			t.Fatal("expected selflog to be disabled")
		}
		// Must not panic with no output configured.
		selflog.Printf("[test] should not appear")
	})

	t.Run("enable with writer", func(t *testing.T) {
		var buf bytes.Buffer
		selflog.Enable(&buf)
		defer selflog.Disable()

		selflog.Printf("[registry] sink %s failed", "[MemorySink.#1]")

		output := buf.String()
		if !strings.Contains(output, "[registry] sink [MemorySink.#1] failed") {
			t.Errorf("unexpected output: %q", output)
		}
		if !strings.HasPrefix(output, time.Now().UTC().Format("2006-01-02")) {
			t.Errorf("expected timestamp prefix, got %q", output)
		}
		if !strings.HasSuffix(output, "\n") {
			t.Error("expected trailing newline")
		}
	})

	t.Run("enable with func", func(t *testing.T) {
		var messages []string
		selflog.EnableFunc(func(msg string) {
			messages = append(messages, msg)
		})
		defer selflog.Disable()

		selflog.Printf("[console] write failed: %v", "disk full")

		if len(messages) != 1 {
			t.Fatalf("expected 1 message, got %d", len(messages))
		}
		if !strings.Contains(messages[0], "[console] write failed: disk full") {
			t.Errorf("unexpected message: %s", messages[0])
		}
	})

	t.Run("switching output replaces the previous one", func(t *testing.T) {
		var first, second bytes.Buffer
		selflog.Enable(&first)
		selflog.Enable(&second)
		defer selflog.Disable()

		selflog.Printf("[test] hello")

		if first.Len() != 0 {
			t.Errorf("first writer should be unused, got %q", first.String())
		}
		if !strings.Contains(second.String(), "[test] hello") {
			t.Errorf("second writer missing message, got %q", second.String())
		}
	})

	t.Run("nil arguments are ignored", func(t *testing.T) {
		selflog.Enable(nil)
		selflog.EnableFunc(nil)
		if selflog.IsEnabled() {
			t.Error("nil writer or func must not enable selflog")
		}
	})
}

func TestSyncWriter(t *testing.T) {
	var buf bytes.Buffer
	selflog.Enable(selflog.Sync(&buf))
	defer selflog.Disable()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			selflog.Printf("[test] line %d", n)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 50 {
		t.Errorf("expected 50 lines, got %d", len(lines))
	}
}
