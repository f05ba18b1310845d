package github

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "github.com/diverger/gh-holiday/internal/errors"
	"github.com/diverger/gh-holiday/internal/testutil"
)

func TestFetchContributions(t *testing.T) {
	var gotPath, gotAgent string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`<svg><rect data-level="1" fill="#fb8500"></rect></svg>`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))

	body, err := c.FetchContributions(context.Background(), "diverger")
	if err != nil {
		t.Fatalf("FetchContributions: %v", err)
	}

	testutil.AssertEqual(t, gotPath, "/users/diverger/contributions", "request path")
	testutil.AssertTrue(t, strings.Contains(gotAgent, "Mozilla"), "expected browser-like User-Agent, got %q", gotAgent)
	testutil.AssertTrue(t, strings.Contains(body, "data-level"), "unexpected body %q", body)
}

func TestFetchProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/diverger" {
			t.Errorf("requested path %q", r.URL.Path)
		}

		w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))

	if _, err := c.FetchProfile(context.Background(), "diverger"); err != nil {
		t.Fatalf("FetchProfile: %v", err)
	}
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))

	_, err := c.FetchContributions(context.Background(), "ghost")
	if err == nil {
		t.Fatal("expected an error on 404")
	}

	var fetchErr *apperrors.FetchError
	if !stderrors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T", err)
	}

	testutil.AssertEqual(t, fetchErr.StatusCode, http.StatusNotFound, "StatusCode")
}

func TestFetchConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before the request

	c := NewClient(WithBaseURL(srv.URL), WithTimeout(2*time.Second))

	_, err := c.FetchContributions(context.Background(), "diverger")
	if err == nil {
		t.Fatal("expected an error against a closed server")
	}

	var fetchErr *apperrors.FetchError
	if !stderrors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T", err)
	}
}
