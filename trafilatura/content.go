// Package trafilatura provides an alternative jobcrawl.ContentExtractor
// built on go-trafilatura's boilerplate removal. It trades the fixed
// selector priority of the goquery extractor for trafilatura's statistical
// approach, which handles general article pages better; the output contract
// (normalized text, length cap, truncation marker) is the same.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/dabrock/jobcrawl"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure ContentExtractor implements jobcrawl.ContentExtractor at compile time.
var _ jobcrawl.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor wraps go-trafilatura to extract main content from HTML.
type ContentExtractor struct{}

// NewContentExtractor creates a new ContentExtractor.
func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *ContentExtractor) Extract(rawHTML string) (*jobcrawl.ExtractResult, error) {
	if rawHTML == "" {
		return &jobcrawl.ExtractResult{Title: "Untitled"}, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, jobcrawl.Errorf(jobcrawl.EINVALID, "failed to extract content: %v", err)
	}

	var text, contentHTML string
	if result.ContentNode != nil {
		text = textContent(result.ContentNode)
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	text = strings.Join(strings.Fields(text), " ")

	truncated := false
	if runes := []rune(text); len(runes) > jobcrawl.MaxContentLength {
		text = string(runes[:jobcrawl.MaxContentLength]) + jobcrawl.TruncationMarker
		truncated = true
	}

	title := strings.TrimSpace(result.Metadata.Title)
	if title == "" {
		title = "Untitled"
	}

	return &jobcrawl.ExtractResult{
		Title:       title,
		Text:        text,
		ContentHTML: contentHTML,
		Truncated:   truncated,
	}, nil
}

// textContent collects the text nodes under n with a single space between
// them.
func textContent(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			if text := strings.TrimSpace(node.Data); text != "" {
				parts = append(parts, text)
			}
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
