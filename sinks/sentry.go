package sinks

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"

	"github.com/willibrandon/timber/core"
	"github.com/willibrandon/timber/format"
	"github.com/willibrandon/timber/selflog"
)

// sentryHub is the subset of *sentry.Hub the sink uses.
type sentryHub interface {
	CaptureEvent(event *sentry.Event) *sentry.EventID
	AddBreadcrumb(breadcrumb *sentry.Breadcrumb, hint *sentry.BreadcrumbHint)
	Flush(timeout time.Duration) bool
}

// SentrySink is the analytics collector: analytics calls become Sentry
// events carrying their tags. Error and Assert calls become error and fatal
// events; lower levels are kept as breadcrumbs attached to later events.
type SentrySink struct {
	label string
	hub   sentryHub

	environment  string
	release      string
	serverName   string
	sampleRate   float64
	flushTimeout time.Duration
	breadcrumbs  bool
	beforeSend   func(*sentry.Event, *sentry.EventHint) *sentry.Event
}

// SentryOption configures a SentrySink.
type SentryOption func(*SentrySink)

// WithSentryEnvironment sets the environment reported with events.
func WithSentryEnvironment(env string) SentryOption {
	return func(s *SentrySink) {
		s.environment = env
	}
}

// WithSentryRelease sets the release reported with events.
func WithSentryRelease(release string) SentryOption {
	return func(s *SentrySink) {
		s.release = release
	}
}

// WithSentryServerName sets the server name reported with events.
func WithSentryServerName(name string) SentryOption {
	return func(s *SentrySink) {
		s.serverName = name
	}
}

// WithSentrySampleRate sets the event sample rate, clamped to [0, 1].
func WithSentrySampleRate(rate float64) SentryOption {
	return func(s *SentrySink) {
		if rate < 0 {
			rate = 0
		} else if rate > 1 {
			rate = 1
		}
		s.sampleRate = rate
	}
}

// WithSentryFlushTimeout bounds how long Close waits for queued events.
func WithSentryFlushTimeout(d time.Duration) SentryOption {
	return func(s *SentrySink) {
		s.flushTimeout = d
	}
}

// WithSentryBreadcrumbs turns breadcrumb collection for low levels on or off.
func WithSentryBreadcrumbs(enabled bool) SentryOption {
	return func(s *SentrySink) {
		s.breadcrumbs = enabled
	}
}

// WithSentryBeforeSend installs a hook that can modify or drop events.
func WithSentryBeforeSend(fn func(*sentry.Event, *sentry.EventHint) *sentry.Event) SentryOption {
	return func(s *SentrySink) {
		s.beforeSend = fn
	}
}

// NewSentrySink creates a sink reporting to the project identified by dsn.
// An empty dsn yields a sink whose events are discarded by the client.
func NewSentrySink(dsn string, opts ...SentryOption) (*SentrySink, error) {
	s := defaultSentrySink()
	for _, opt := range opts {
		opt(s)
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      s.environment,
		Release:          s.release,
		ServerName:       s.serverName,
		SampleRate:       s.sampleRate,
		AttachStacktrace: true,
		BeforeSend:       s.beforeSend,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create sentry client")
	}

	s.hub = sentry.NewHub(client, sentry.NewScope())
	return s, nil
}

func defaultSentrySink() *SentrySink {
	s := &SentrySink{
		sampleRate:   1.0,
		flushTimeout: 2 * time.Second,
		breadcrumbs:  true,
	}
	s.label = DefaultLabel(s)
	return s
}

func (s *SentrySink) Label() string {
	return s.label
}

func (s *SentrySink) Render(level core.Level, message string, err error, args ...any) error {
	msg := format.Lenient(message, args...)

	switch level {
	case core.ErrorLevel, core.AssertLevel:
		event := s.newEvent(sentryLevel(level), msg, message, err)
		if level == core.AssertLevel {
			event.Tags["assert"] = "true"
		}
		s.capture(event)
	default:
		if !s.breadcrumbs {
			return nil
		}
		crumb := &sentry.Breadcrumb{
			Type:      "default",
			Category:  "log",
			Message:   msg,
			Level:     sentryLevel(level),
			Timestamp: time.Now(),
		}
		if err != nil {
			crumb.Data = map[string]interface{}{"error": err.Error()}
		}
		s.hub.AddBreadcrumb(crumb, nil)
	}
	return nil
}

func (s *SentrySink) RenderAnalytics(message string, err error, tags map[string]string, args ...any) error {
	event := s.newEvent(sentry.LevelInfo, format.Lenient(message, args...), message, err)
	event.Tags["analytics"] = "true"
	for k, v := range tags {
		event.Tags[k] = v
	}
	s.capture(event)
	return nil
}

func (s *SentrySink) newEvent(level sentry.Level, msg, template string, err error) *sentry.Event {
	event := sentry.NewEvent()
	event.Level = level
	event.Message = msg
	event.Logger = "timber"
	event.Timestamp = time.Now()
	event.Extra["template"] = template
	if err != nil {
		event.Exception = []sentry.Exception{{
			Type:       fmt.Sprintf("%T", err),
			Value:      err.Error(),
			Stacktrace: sentry.ExtractStacktrace(err),
		}}
	}
	return event
}

func (s *SentrySink) capture(event *sentry.Event) {
	// A nil ID means the client dropped the event (sampling or BeforeSend).
	if id := s.hub.CaptureEvent(event); id == nil && selflog.IsEnabled() {
		selflog.Printf("[sentry] event dropped: %s", event.Message)
	}
}

// Close waits for queued events to be sent.
func (s *SentrySink) Close() error {
	if !s.hub.Flush(s.flushTimeout) {
		return errors.Errorf("sentry flush timed out after %s", s.flushTimeout)
	}
	return nil
}

func sentryLevel(level core.Level) sentry.Level {
	switch level {
	case core.VerboseLevel, core.DebugLevel:
		return sentry.LevelDebug
	case core.InfoLevel, core.AnalyticsLevel:
		return sentry.LevelInfo
	case core.WarnLevel:
		return sentry.LevelWarning
	case core.ErrorLevel:
		return sentry.LevelError
	case core.AssertLevel:
		return sentry.LevelFatal
	default:
		return sentry.LevelInfo
	}
}
