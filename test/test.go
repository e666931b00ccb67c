// Package test contains helper functions for the testing of the application.
package test

import (
	"testing"
)

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Fatalf("equality test of type %T failed: %v does not equal %v", value, value, expectedValue)
	}
}

// ExpectInequality is used to test inequality between one value and another.
func ExpectInequality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value == expectedValue {
		t.Fatalf("inequality test of type %T failed: %v does equal %v", value, value, expectedValue)
	}
}

// ExpectApproximate is used to test approximate equality of float values. The
// tolerance is expressed as a fraction of the expected value.
func ExpectApproximate(t *testing.T, value float64, expectedValue float64, tolerance float64) {
	t.Helper()
	d := expectedValue * tolerance
	if d < 0 {
		d = -d
	}
	if value < expectedValue-d || value > expectedValue+d {
		t.Fatalf("approximation test failed: %v is not within %v of %v", value, d, expectedValue)
	}
}

// ExpectSuccess is used to test that an error value is nil.
func ExpectSuccess(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("success test failed: %v", err)
	}
}

// ExpectFailure is used to test that an error value is not nil.
func ExpectFailure(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("failure test failed: error is nil")
	}
}
