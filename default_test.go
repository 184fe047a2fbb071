package timber

import (
	"errors"
	"testing"

	"github.com/willibrandon/timber/core"
	"github.com/willibrandon/timber/sinks"
	"github.com/willibrandon/timber/testutil"
)

func resetDefault(t *testing.T) {
	t.Helper()
	std.Store(nil)
	t.Cleanup(func() { std.Store(nil) })
}

func TestPackageFunctionsBeforeInit(t *testing.T) {
	resetDefault(t)

	if Default() != nil {
		t.Fatal("expected no default registry")
	}

	// None of these may panic without a default registry.
	Error("e")
	WarnWith(errors.New("x"), "w")
	InfoErr(errors.New("x"))
	AnalyticsTags(map[string]string{"k": "v"}, "a")
	AnalyticsErr(errors.New("x"))
}

func TestInit(t *testing.T) {
	resetDefault(t)

	testutil.AssertErrorIs(t, Init(nil), ErrNilRegistry, "nil registry")

	first := New()
	testutil.AssertNoError(t, Init(first), "first Init")
	testutil.AssertErrorIs(t, Init(New()), ErrAlreadyInitialized, "second Init")
	testutil.AssertErrorIs(t, Init(first), ErrAlreadyInitialized, "same registry again")

	if Default() != first {
		t.Error("Default() should return the first registry")
	}
}

func TestPackageFunctionsDelegate(t *testing.T) {
	resetDefault(t)

	m := sinks.NewMemorySink()
	testutil.AssertNoError(t, Init(New(WithSink(m))), "Init")

	cause := errors.New("cause")
	Verbose("v")
	VerboseWith(cause, "v")
	VerboseErr(cause)
	Debug("d")
	DebugWith(cause, "d")
	DebugErr(cause)
	Info("i %d", 1)
	InfoWith(cause, "i")
	InfoErr(cause)
	Warn("w")
	WarnWith(cause, "w")
	WarnErr(cause)
	Error("e")
	ErrorWith(cause, "e")
	ErrorErr(cause)
	Assert("a")
	AssertWith(cause, "a")
	AssertErr(cause)
	Analytics("x")
	AnalyticsWith(cause, "x")
	AnalyticsTags(map[string]string{"k": "v"}, "x")
	AnalyticsTagsWith(cause, map[string]string{"k": "v"}, "x")
	AnalyticsErr(cause)

	testutil.AssertEqual(t, m.RenderCount(), 18, "render calls")
	testutil.AssertEqual(t, m.AnalyticsCount(), 5, "analytics calls")

	warnings := m.Find(func(c *sinks.Call) bool { return c.Level == core.WarnLevel })
	testutil.AssertEqual(t, len(warnings), 3, "warn calls")
	testutil.AssertEqual(t, m.Calls()[6].Rendered, "i 1", "rendered info")
}
