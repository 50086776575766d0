package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dabrock/jobcrawl"
)

// Ensure MetadataExtractor implements jobcrawl.MetadataExtractor at compile time.
var _ jobcrawl.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor pulls best-effort page metadata from head tags. Each
// field is looked up independently; a missing field stays empty and never
// affects another field.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata returns description, author, keywords and language for the
// page. Named meta tags are consulted first, with Open-Graph-prefixed
// equivalents as fallback for description and author.
func (e *MetadataExtractor) ExtractMetadata(rawHTML string) (*jobcrawl.PageMetadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, jobcrawl.Errorf(jobcrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	md := &jobcrawl.PageMetadata{
		Keywords: []string{},
	}

	md.Description = metaContent(doc, `meta[name="description"]`)
	if md.Description == "" {
		md.Description = metaContent(doc, `meta[property="og:description"]`)
	}

	md.Author = metaContent(doc, `meta[name="author"]`)
	if md.Author == "" {
		md.Author = metaContent(doc, `meta[property="article:author"]`)
	}

	if keywords := metaContent(doc, `meta[name="keywords"]`); keywords != "" {
		for _, k := range strings.Split(keywords, ",") {
			if k = strings.TrimSpace(k); k != "" {
				md.Keywords = append(md.Keywords, k)
			}
		}
	}

	if lang, ok := doc.Find("html").First().Attr("lang"); ok {
		md.Language = strings.TrimSpace(lang)
	}

	return md, nil
}

// metaContent returns the trimmed content attribute of the first element
// matching the selector, or an empty string.
func metaContent(doc *goquery.Document, selector string) string {
	content, ok := doc.Find(selector).First().Attr("content")
	if !ok {
		return ""
	}
	return strings.TrimSpace(content)
}
