package jobcrawl

import "context"

// Response holds the raw result of fetching a URL, before any extraction.
type Response struct {
	// RequestedURL is the URL the caller asked for.
	RequestedURL string

	// FinalURL is the URL after following redirects.
	FinalURL string

	// StatusCode is the HTTP status code of the final response.
	StatusCode int

	// ContentType is the Content-Type header of the final response,
	// lower-cased, including any parameters (e.g. "text/html; charset=utf-8").
	ContentType string

	// Body is the raw response body, bounded by the fetcher's size cap.
	Body []byte
}

// Fetcher retrieves raw content from URLs with bounded time and size.
//
// Implementations perform a single attempt: no retries, no backoff. Callers
// that want retry semantics apply them at their own layer.
type Fetcher interface {
	// Fetch issues a single GET for the URL and returns the raw response.
	// The context controls cancellation in addition to the fetcher's own
	// timeout.
	//
	// Returns EINVALID for a malformed URL, ETIMEOUT when the timeout
	// elapses, ETOOLARGE when the response exceeds the size cap,
	// EUNSUPPORTED for a non-processable content type, and EUNAVAILABLE
	// for any other transport failure.
	Fetch(ctx context.Context, url string) (*Response, error)
}
