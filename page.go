package jobcrawl

// FetchResult is the structured outcome of fetching and extracting a single
// page. It is immutable once constructed, produced once per fetch call, and
// owned by the caller; results have no identity or lifecycle beyond the call
// that produced them.
type FetchResult struct {
	// RequestedURL is the URL the caller asked for.
	RequestedURL string `json:"url"`

	// FinalURL is the URL after following redirects.
	FinalURL string `json:"finalUrl"`

	// StatusCode is the HTTP status code of the final response.
	StatusCode int `json:"statusCode"`

	// ContentType is the Content-Type header of the final response.
	ContentType string `json:"contentType"`

	// Title is the extracted page title.
	Title string `json:"title"`

	// Content is the extracted readable text, capped at MaxContentLength.
	Content string `json:"content"`

	// ContentHTML is the inner HTML of the main content region.
	ContentHTML string `json:"-"`

	// ContentHash is a hex-encoded hash of the raw response body. Two
	// fetches of byte-identical content produce the same hash.
	ContentHash string `json:"contentHash"`

	// Truncated reports whether Content was cut off at MaxContentLength.
	Truncated bool `json:"truncated"`

	// Metadata holds best-effort page metadata.
	Metadata PageMetadata `json:"metadata"`
}

// FetchProgress reports progress during a batch fetch.
type FetchProgress struct {
	URL       string
	Completed int
	Total     int
	Err       error
}

// FetchProgressFunc is called as batch URLs finish, successfully or not.
type FetchProgressFunc func(FetchProgress)
