// Package http provides the HTTP-based implementation of jobcrawl.Fetcher:
// a single bounded GET with redirect following, a wall-clock timeout, a
// response size cap, and a content-type gate.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dabrock/jobcrawl"
)

// DefaultFetchTimeout is the default wall-clock timeout for a fetch.
const DefaultFetchTimeout = 30 * time.Second

// DefaultMaxContentLength is the default response size cap in bytes (10MB).
const DefaultMaxContentLength = 10_000_000

// DefaultUserAgent identifies the crawler to remote servers.
const DefaultUserAgent = "JobCrawl-Bot/1.0 (+https://www.dabrock.info)"

// supportedContentTypes are the content types the pipeline can process.
// Matched by substring against the lower-cased Content-Type header, so
// parameters like charset don't interfere.
var supportedContentTypes = []string{"text/html", "text/plain", "application/xhtml"}

// Ensure Fetcher implements jobcrawl.Fetcher at compile time.
var _ jobcrawl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves content from URLs using a single HTTP GET per call.
// Redirects are followed; nothing is retried.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	maxLength int64
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the wall-clock timeout for a fetch.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxContentLength sets the response size cap in bytes.
// Defaults to DefaultMaxContentLength (10MB) if not specified.
func WithMaxContentLength(n int64) Option {
	return func(f *Fetcher) {
		f.maxLength = n
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		maxLength: DefaultMaxContentLength,
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

// Fetch issues a single GET for the URL and returns the raw response.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*jobcrawl.Response, error) {
	if !jobcrawl.ValidateURL(url) {
		return nil, jobcrawl.Errorf(jobcrawl.EINVALID, "invalid URL: %s", url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, jobcrawl.Errorf(jobcrawl.EINVALID, "invalid URL: %s", url)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(err, url)
	}
	defer resp.Body.Close()

	// Content-Length precheck: refuse oversized responses before reading
	// the body. Servers that omit the header are caught by the capped
	// read below.
	if resp.ContentLength > f.maxLength {
		return nil, jobcrawl.Errorf(jobcrawl.ETOOLARGE,
			"content too large: %d bytes (max: %d)", resp.ContentLength, f.maxLength)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, jobcrawl.Errorf(jobcrawl.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if !isSupportedContentType(contentType) {
		return nil, jobcrawl.Errorf(jobcrawl.EUNSUPPORTED, "unsupported content type: %s", contentType)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxLength+1))
	if err != nil {
		return nil, classifyTransportError(err, url)
	}
	if int64(len(body)) > f.maxLength {
		return nil, jobcrawl.Errorf(jobcrawl.ETOOLARGE,
			"content too large: body exceeds %d bytes", f.maxLength)
	}

	return &jobcrawl.Response{
		RequestedURL: url,
		FinalURL:     resp.Request.URL.String(),
		StatusCode:   resp.StatusCode,
		ContentType:  contentType,
		Body:         body,
	}, nil
}

// isSupportedContentType reports whether the content type is processable.
func isSupportedContentType(contentType string) bool {
	for _, ct := range supportedContentTypes {
		if strings.Contains(contentType, ct) {
			return true
		}
	}
	return false
}

// classifyTransportError maps a network-layer error to an application error:
// timeouts become ETIMEOUT, everything else EUNAVAILABLE.
func classifyTransportError(err error, url string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return jobcrawl.Errorf(jobcrawl.ETIMEOUT, "timeout fetching %s", url)
	}
	var timeoutErr interface{ Timeout() bool }
	if errors.As(err, &timeoutErr) && timeoutErr.Timeout() {
		return jobcrawl.Errorf(jobcrawl.ETIMEOUT, "timeout fetching %s", url)
	}
	return jobcrawl.Errorf(jobcrawl.EUNAVAILABLE, "fetch failed for %s: %v", url, err)
}
