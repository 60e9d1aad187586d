// Package http provides an HTTP-based implementation of cookalong.Fetcher
// for the recipe site's server-rendered pages.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/cookalong"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the skill to the recipe site.
const DefaultUserAgent = "cookalong/1.0 (+https://github.com/fwojciec/cookalong)"

// Ensure Fetcher implements cookalong.Fetcher at compile time.
var _ cookalong.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP GET requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   *DomainLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit paces requests to each host to at most rps per second.
// A non-positive rps disables pacing.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = NewDomainLimiter(rps)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if f.limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", cookalong.Errorf(cookalong.EINVALID, "invalid URL %q: %v", rawURL, err)
		}
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
