// Package opengraph provides an Open Graph fallback for page metadata
// extraction, filling gaps the primary extractor leaves with values from
// og:* properties.
package opengraph

import (
	"strings"

	"github.com/dabrock/jobcrawl"
	"github.com/dyatlov/go-opengraph/opengraph"
)

// Ensure Fallback implements jobcrawl.MetadataExtractor at compile time.
var _ jobcrawl.MetadataExtractor = (*Fallback)(nil)

// Fallback decorates a MetadataExtractor with Open Graph data: it fills an
// empty description from og:description and sets the site name from
// og:site_name. Fields the primary extractor already populated are kept.
type Fallback struct {
	next jobcrawl.MetadataExtractor
}

// NewFallback creates a Fallback wrapping the given extractor.
func NewFallback(next jobcrawl.MetadataExtractor) *Fallback {
	return &Fallback{next: next}
}

// ExtractMetadata delegates to the wrapped extractor and supplements the
// result with Open Graph values. The supplement is best-effort: a page
// without parseable Open Graph data leaves the fields as the primary
// extractor produced them.
func (f *Fallback) ExtractMetadata(html string) (*jobcrawl.PageMetadata, error) {
	md, err := f.next.ExtractMetadata(html)
	if err != nil {
		return nil, err
	}

	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(strings.NewReader(html)); err != nil {
		return md, nil
	}

	if md.Description == "" {
		md.Description = strings.TrimSpace(og.Description)
	}
	if md.SiteName == "" {
		md.SiteName = strings.TrimSpace(og.SiteName)
	}

	return md, nil
}
