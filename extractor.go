package jobcrawl

// MaxContentLength is the cap on extracted text, in characters. Longer
// documents are truncated explicitly with TruncationMarker appended.
const MaxContentLength = 50000

// TruncationMarker is appended to extracted text that was cut off at
// MaxContentLength, signaling lossy extraction rather than a complete
// document.
const TruncationMarker = "... [content truncated]"

// ExtractResult holds the readable content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title. Falls back through metadata and headings;
	// "Untitled" when nothing usable is found.
	Title string

	// Text is the main readable text: whitespace-normalized, capped at
	// MaxContentLength with TruncationMarker appended when truncated.
	Text string

	// ContentHTML is the inner HTML of the region Text was extracted from,
	// suitable for downstream conversion (e.g. to markdown).
	ContentHTML string

	// Truncated reports whether Text was cut off at MaxContentLength.
	Truncated bool
}

// ContentExtractor extracts main readable content from HTML pages, removing
// boilerplate (navigation, headers, footers, scripts, forms).
type ContentExtractor interface {
	// Extract processes raw HTML and returns the main content.
	// Extraction itself never fails on a parseable document; the worst
	// case for a content-free document is an empty Text.
	Extract(html string) (*ExtractResult, error)
}

// PageMetadata holds best-effort metadata extracted from a page's head.
// Every field independently defaults to its zero value when absent;
// absence is not an error.
type PageMetadata struct {
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Keywords    []string `json:"keywords"`
	Language    string   `json:"language"`
	SiteName    string   `json:"siteName"`
}

// MetadataExtractor extracts page metadata from HTML.
type MetadataExtractor interface {
	ExtractMetadata(html string) (*PageMetadata, error)
}

// LanguageDetector infers the language of a text as an ISO 639-1 code.
// Used as an optional fallback when a page declares no language.
type LanguageDetector interface {
	// Detect returns the ISO 639-1 code for the text's language, or an
	// empty string when the text is too short or detection fails.
	Detect(text string) string
}
