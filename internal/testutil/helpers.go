package testutil

import "testing"

// AssertEqual fails the test if got != want.
func AssertEqual[T comparable](t *testing.T, got, want T, msgAndArgs ...interface{}) {
	t.Helper()

	if got != want {
		if len(msgAndArgs) > 0 {
			format := msgAndArgs[0].(string)
			args := msgAndArgs[1:]
			t.Errorf(format+": got %v, want %v", append(args, got, want)...)
		} else {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

// AssertNil fails the test if value is not nil.
func AssertNil(t *testing.T, value interface{}, msgAndArgs ...interface{}) {
	t.Helper()

	if value != nil {
		if len(msgAndArgs) > 0 {
			format := msgAndArgs[0].(string)
			args := msgAndArgs[1:]
			t.Errorf(format+": expected nil, got %v", append(args, value)...)
		} else {
			t.Errorf("expected nil, got %v", value)
		}
	}
}

// AssertTrue fails the test if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()

	if !condition {
		if len(msgAndArgs) > 0 {
			format := msgAndArgs[0].(string)
			args := msgAndArgs[1:]
			t.Errorf(format, args...)
		} else {
			t.Error("expected true, got false")
		}
	}
}
