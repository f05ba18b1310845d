package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestFetchError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := &FetchError{URL: "https://github.com/users/diverger/contributions", Err: cause}

	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}

	if !stderrors.Is(err, cause) {
		t.Error("FetchError must unwrap to its cause")
	}
}

func TestFetchErrorStatus(t *testing.T) {
	err := &FetchError{URL: "https://github.com/diverger", StatusCode: 404}

	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Error() = %q, want status code included", err.Error())
	}
}

func TestParseError(t *testing.T) {
	cause := stderrors.New("unexpected EOF")
	err := &ParseError{Source: "contributions fragment", Err: cause}

	if !strings.Contains(err.Error(), "contributions fragment") {
		t.Errorf("Error() = %q, want source included", err.Error())
	}

	if !stderrors.Is(err, cause) {
		t.Error("ParseError must unwrap to its cause")
	}
}
