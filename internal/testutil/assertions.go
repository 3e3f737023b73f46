package testutil

import (
	"math"
	"testing"
)

// AssertCount checks an integer result
func AssertCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d, got %d", context, expected, actual)
	}
}

// AssertFloat checks a rounded float result
func AssertFloat(t *testing.T, actual, expected float64, context string) {
	t.Helper()
	if math.Abs(actual-expected) > 1e-9 {
		t.Errorf("%s: expected %.2f, got %v", context, expected, actual)
	}
}

// AssertStrings checks an ordered string slice
func AssertStrings(t *testing.T, actual, expected []string, context string) {
	t.Helper()
	if len(actual) != len(expected) {
		t.Errorf("%s: expected %d items %v, got %d items %v", context, len(expected), expected, len(actual), actual)
		return
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Errorf("%s: item %d: expected %q, got %q", context, i, expected[i], actual[i])
		}
	}
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}
