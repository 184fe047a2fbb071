package sinks

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/willibrandon/timber/core"
)

type fakeHub struct {
	mu          sync.Mutex
	events      []*sentry.Event
	breadcrumbs []*sentry.Breadcrumb
	flushOK     bool
	drop        bool
}

func (h *fakeHub) CaptureEvent(event *sentry.Event) *sentry.EventID {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.drop {
		return nil
	}
	h.events = append(h.events, event)
	id := sentry.EventID("0123456789abcdef0123456789abcdef")
	return &id
}

func (h *fakeHub) AddBreadcrumb(breadcrumb *sentry.Breadcrumb, _ *sentry.BreadcrumbHint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.breadcrumbs = append(h.breadcrumbs, breadcrumb)
}

func (h *fakeHub) Flush(time.Duration) bool {
	return h.flushOK
}

func newTestSentrySink(opts ...SentryOption) (*SentrySink, *fakeHub) {
	hub := &fakeHub{flushOK: true}
	sink := defaultSentrySink()
	for _, opt := range opts {
		opt(sink)
	}
	sink.hub = hub
	return sink, hub
}

func TestSentrySinkAnalytics(t *testing.T) {
	sink, hub := newTestSentrySink()

	tags := map[string]string{"screen": "checkout", "variant": "b"}
	if err := sink.RenderAnalytics("purchase %s", nil, tags, "sku-42"); err != nil {
		t.Fatal(err)
	}

	if len(hub.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(hub.events))
	}
	event := hub.events[0]
	if event.Message != "purchase sku-42" {
		t.Errorf("unexpected message %q", event.Message)
	}
	if event.Level != sentry.LevelInfo {
		t.Errorf("expected info level, got %v", event.Level)
	}
	if event.Tags["screen"] != "checkout" || event.Tags["variant"] != "b" || event.Tags["analytics"] != "true" {
		t.Errorf("unexpected tags %v", event.Tags)
	}
	if event.Extra["template"] != "purchase %s" {
		t.Errorf("expected template in extra, got %v", event.Extra["template"])
	}
	if len(event.Exception) != 0 {
		t.Errorf("expected no exception, got %v", event.Exception)
	}
}

func TestSentrySinkAnalyticsCallerTagWins(t *testing.T) {
	sink, hub := newTestSentrySink()

	if err := sink.RenderAnalytics("opened", nil, map[string]string{"analytics": "funnel"}); err != nil {
		t.Fatal(err)
	}

	if got := hub.events[0].Tags["analytics"]; got != "funnel" {
		t.Errorf("caller tag should override the marker, got %q", got)
	}
}

func TestSentrySinkAnalyticsWithError(t *testing.T) {
	sink, hub := newTestSentrySink()

	if err := sink.RenderAnalytics("purchase", errors.New("card declined"), nil); err != nil {
		t.Fatal(err)
	}

	exceptions := hub.events[0].Exception
	if len(exceptions) != 1 {
		t.Fatalf("expected 1 exception, got %d", len(exceptions))
	}
	if exceptions[0].Value != "card declined" {
		t.Errorf("unexpected exception value %q", exceptions[0].Value)
	}
	if !strings.Contains(exceptions[0].Type, "errorString") {
		t.Errorf("unexpected exception type %q", exceptions[0].Type)
	}
}

func TestSentrySinkRender(t *testing.T) {
	t.Run("error becomes event", func(t *testing.T) {
		sink, hub := newTestSentrySink()
		if err := sink.Render(core.ErrorLevel, "save failed: %s", errors.New("boom"), "disk"); err != nil {
			t.Fatal(err)
		}
		if len(hub.events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(hub.events))
		}
		if hub.events[0].Level != sentry.LevelError {
			t.Errorf("expected error level, got %v", hub.events[0].Level)
		}
		if hub.events[0].Message != "save failed: disk" {
			t.Errorf("unexpected message %q", hub.events[0].Message)
		}
	})

	t.Run("assert becomes fatal event", func(t *testing.T) {
		sink, hub := newTestSentrySink()
		if err := sink.Render(core.AssertLevel, "impossible", nil); err != nil {
			t.Fatal(err)
		}
		if hub.events[0].Level != sentry.LevelFatal || hub.events[0].Tags["assert"] != "true" {
			t.Errorf("unexpected assert event %+v", hub.events[0])
		}
	})

	t.Run("lower levels become breadcrumbs", func(t *testing.T) {
		sink, hub := newTestSentrySink()
		for _, level := range []core.Level{core.VerboseLevel, core.DebugLevel, core.InfoLevel, core.WarnLevel} {
			if err := sink.Render(level, "step %d", nil, int(level)); err != nil {
				t.Fatal(err)
			}
		}
		if len(hub.events) != 0 {
			t.Errorf("expected no events, got %d", len(hub.events))
		}
		if len(hub.breadcrumbs) != 4 {
			t.Fatalf("expected 4 breadcrumbs, got %d", len(hub.breadcrumbs))
		}
		if hub.breadcrumbs[3].Level != sentry.LevelWarning || hub.breadcrumbs[3].Message != "step 5" {
			t.Errorf("unexpected breadcrumb %+v", hub.breadcrumbs[3])
		}
	})

	t.Run("breadcrumbs disabled", func(t *testing.T) {
		sink, hub := newTestSentrySink(WithSentryBreadcrumbs(false))
		if err := sink.Render(core.InfoLevel, "ignored", nil); err != nil {
			t.Fatal(err)
		}
		if len(hub.breadcrumbs) != 0 {
			t.Errorf("expected no breadcrumbs, got %d", len(hub.breadcrumbs))
		}
	})
}

func TestSentrySinkDroppedEventIsNotAFailure(t *testing.T) {
	sink, hub := newTestSentrySink()
	hub.drop = true

	if err := sink.RenderAnalytics("sampled out", nil, nil); err != nil {
		t.Errorf("dropped events must not fail the sink: %v", err)
	}
}

func TestSentrySinkClose(t *testing.T) {
	sink, hub := newTestSentrySink(WithSentryFlushTimeout(10 * time.Millisecond))
	if err := sink.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}

	hub.flushOK = false
	err := sink.Close()
	if err == nil || !strings.Contains(err.Error(), "timed out") {
		t.Errorf("expected flush timeout error, got %v", err)
	}
}

func TestSentryOptions(t *testing.T) {
	sink, _ := newTestSentrySink(
		WithSentryEnvironment("staging"),
		WithSentryRelease("1.2.3"),
		WithSentryServerName("api-1"),
		WithSentrySampleRate(2),
	)

	if sink.environment != "staging" || sink.release != "1.2.3" || sink.serverName != "api-1" {
		t.Errorf("options not applied: %+v", sink)
	}
	if sink.sampleRate != 1 {
		t.Errorf("sample rate should clamp to 1, got %v", sink.sampleRate)
	}
}

func TestNewSentrySinkWithoutDSN(t *testing.T) {
	sink, err := NewSentrySink("", WithSentryBeforeSend(func(*sentry.Event, *sentry.EventHint) *sentry.Event {
		return nil
	}))
	if err != nil {
		t.Fatalf("NewSentrySink() = %v", err)
	}
	if sink.Label() == "" {
		t.Error("expected a label")
	}
	if err := sink.RenderAnalytics("offline", nil, map[string]string{"k": "v"}); err != nil {
		t.Fatal(err)
	}
	if err := sink.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestNewSentrySinkInvalidDSN(t *testing.T) {
	if _, err := NewSentrySink("not a dsn"); err == nil {
		t.Error("expected error for invalid DSN")
	}
}
