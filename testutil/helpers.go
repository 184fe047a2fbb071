// Package testutil holds assertions shared by the timber test suites.
package testutil

import (
	"slices"
	"testing"
	"time"

	"github.com/pkg/errors"
)

// Eventually waits for condition to hold, polling every 5ms until timeout.
func Eventually(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}

	if message == "" {
		message = "condition not met within timeout"
	}
	t.Fatal(message)
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error, message string) {
	t.Helper()
	if err != nil {
		if message != "" {
			t.Fatalf("%s: %v", message, err)
		} else {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

// AssertErrorIs fails the test unless err wraps target.
func AssertErrorIs(t *testing.T, err, target error, message string) {
	t.Helper()
	if !errors.Is(err, target) {
		if message != "" {
			t.Fatalf("%s: expected %v in chain, got %v", message, target, err)
		} else {
			t.Fatalf("expected %v in chain, got %v", target, err)
		}
	}
}

// AssertEqual fails the test if actual != expected.
func AssertEqual[T comparable](t *testing.T, actual, expected T, message string) {
	t.Helper()
	if actual != expected {
		if message != "" {
			t.Fatalf("%s: expected %v, got %v", message, expected, actual)
		} else {
			t.Fatalf("expected %v, got %v", expected, actual)
		}
	}
}

// AssertContains fails the test if the slice doesn't contain the value.
func AssertContains[T comparable](t *testing.T, slice []T, value T, message string) {
	t.Helper()
	if slices.Contains(slice, value) {
		return
	}
	if message != "" {
		t.Fatalf("%s: %v not found in %v", message, value, slice)
	} else {
		t.Fatalf("%v not found in %v", value, slice)
	}
}

// AssertTags fails the test unless got holds exactly the entries of want.
func AssertTags(t *testing.T, got, want map[string]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected tags %v, got %v", want, got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("expected tags %v, got %v", want, got)
		}
	}
}
