// Package github fetches the public pages that carry the contribution graph.
// It is the detection run's only external collaborator: plain HTTP requests
// for server-rendered markup, no headless browser.
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diverger/gh-holiday/internal/errors"
)

// DefaultTimeout bounds a single page fetch. Detection runs have no retry
// loop, so a stuck fetch should fail well before a CI step times out.
const DefaultTimeout = 30 * time.Second

const defaultBaseURL = "https://github.com"

// A browser-like agent; github.com serves the full calendar markup to
// browsers and a reduced page to obvious bots.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client fetches profile pages and contribution graph fragments.
type Client struct {
	http    *http.Client
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different host. Used by tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(base, "/")
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// NewClient creates a page-fetching client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: DefaultTimeout},
		baseURL: defaultBaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchContributions retrieves the standalone contribution graph fragment for
// a user. This is the smallest page that carries the calendar markup.
func (c *Client) FetchContributions(ctx context.Context, username string) (string, error) {
	return c.get(ctx, fmt.Sprintf("%s/users/%s/contributions", c.baseURL, username))
}

// FetchProfile retrieves the full public profile page. Used as a fallback
// when the fragment yields no signal: the profile carries the hint attribute
// and the holiday style variables.
func (c *Client) FetchProfile(ctx context.Context, username string) (string, error) {
	return c.get(ctx, fmt.Sprintf("%s/%s", c.baseURL, username))
}

func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &errors.FetchError{URL: url, Err: err}
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &errors.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &errors.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &errors.FetchError{URL: url, Err: err}
	}

	return string(body), nil
}
