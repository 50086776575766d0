// Package goquery provides the DOM-based implementations of the extraction
// interfaces: main-content extraction, page metadata, and job-field
// extraction, all built on CSS selector queries.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dabrock/jobcrawl"
	"golang.org/x/net/html"
)

// boilerplateSelector matches elements that pollute both text extraction and
// content-region matching. They are removed from the tree, not just skipped.
const boilerplateSelector = "script, style, nav, header, footer, aside, form"

// contentSelectors are tried in priority order to locate the main content
// region; the first match wins.
var contentSelectors = []string{
	"article",
	"main",
	`[role="main"]`,
	".content",
	"#content",
	".post",
	".article",
}

// paragraphBreakRe reinserts paragraph breaks wherever sentence-ending
// punctuation is followed by a capital letter. A lossy heuristic, not a real
// paragraph-boundary detector.
var paragraphBreakRe = regexp.MustCompile(`([.!?]) ([A-Z])`)

// Ensure ContentExtractor implements jobcrawl.ContentExtractor at compile time.
var _ jobcrawl.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor extracts the main readable text from an HTML document by
// stripping boilerplate elements and locating a content region through a
// prioritized selector list.
type ContentExtractor struct{}

// NewContentExtractor creates a new ContentExtractor.
func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *ContentExtractor) Extract(rawHTML string) (*jobcrawl.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, jobcrawl.Errorf(jobcrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	// Title comes from the intact document; the h1 fallback may live
	// inside an element the boilerplate pass removes.
	title := extractTitle(doc)

	doc.Find(boilerplateSelector).Remove()

	region := findContentRegion(doc)

	contentHTML, err := region.Html()
	if err != nil {
		contentHTML = ""
	}

	text := normalizeWhitespace(textWithSeparator(region))
	text = paragraphBreakRe.ReplaceAllString(text, "$1\n\n$2")

	truncated := false
	if runes := []rune(text); len(runes) > jobcrawl.MaxContentLength {
		text = string(runes[:jobcrawl.MaxContentLength]) + jobcrawl.TruncationMarker
		truncated = true
	}

	return &jobcrawl.ExtractResult{
		Title:       title,
		Text:        strings.TrimSpace(text),
		ContentHTML: contentHTML,
		Truncated:   truncated,
	}, nil
}

// findContentRegion locates the primary content region by trying the
// prioritized selectors, falling back to body and finally the whole
// document.
func findContentRegion(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body
	}
	return doc.Selection
}

// extractTitle returns the page title: <title>, then og:title, then the
// first <h1>, then "Untitled".
func extractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if og, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if og = strings.TrimSpace(og); og != "" {
			return og
		}
	}
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return "Untitled"
}

// textWithSeparator extracts the text of a selection with a single space
// between adjacent text nodes, so text from sibling elements doesn't run
// together.
func textWithSeparator(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

// collectText appends the trimmed content of every non-empty text node under n.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// normalizeWhitespace collapses all runs of whitespace to a single space and
// trims the ends.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
