// Package http provides a static implementation of jobsnap.Browser for job
// boards that serve their postings as plain HTML.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/jobsnap"
)

// DefaultTimeout is the default timeout for page requests.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent identifies requests to job boards that reject Go's
// default client string.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"

// maxBodySize caps how much of a response is read.
const maxBodySize = 16 << 20

// Ensure Browser implements jobsnap.Browser at compile time.
var _ jobsnap.Browser = (*Browser)(nil)

// Browser loads pages with plain HTTP requests. It does not execute
// JavaScript, so lazy-loaded content never appears and there is no user
// selection to capture.
type Browser struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Browser.
type Option func(*Browser)

// WithTimeout sets the timeout for page requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(b *Browser) {
		b.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(b *Browser) {
		b.userAgent = ua
	}
}

// NewBrowser creates a new static Browser.
func NewBrowser(opts ...Option) *Browser {
	b := &Browser{
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.client = &http.Client{
		Timeout: b.timeout,
	}

	return b
}

// Open fetches url and returns a tab holding the response body.
func (b *Browser) Open(ctx context.Context, url string) (jobsnap.Tab, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, jobsnap.Errorf(jobsnap.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", b.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, err
	}

	return &Tab{url: resp.Request.URL.String(), html: string(body)}, nil
}

// Close releases resources. This is a no-op since http.Client doesn't
// require explicit cleanup.
func (b *Browser) Close() error {
	return nil
}

var _ jobsnap.Tab = (*Tab)(nil)

// Tab is a fetched page snapshot.
type Tab struct {
	url  string
	html string
}

// URL returns the final URL after redirects.
func (t *Tab) URL() string { return t.url }

// Materialize does nothing: a static page has no lazy content to trigger.
func (t *Tab) Materialize(ctx context.Context) error { return ctx.Err() }

// HTML returns the response body.
func (t *Tab) HTML(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return t.html, nil
}

// Selection always fails: selections only exist in a live browser.
func (t *Tab) Selection(context.Context) (string, error) {
	return "", jobsnap.Errorf(jobsnap.EINVALID, "text selection requires a live browser")
}

// Close is a no-op.
func (t *Tab) Close() error { return nil }
