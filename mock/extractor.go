package mock

import "github.com/dabrock/jobcrawl"

var _ jobcrawl.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of jobcrawl.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*jobcrawl.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*jobcrawl.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ jobcrawl.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of jobcrawl.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (*jobcrawl.PageMetadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string) (*jobcrawl.PageMetadata, error) {
	return e.ExtractMetadataFn(html)
}

var _ jobcrawl.JobExtractor = (*JobExtractor)(nil)

// JobExtractor is a mock implementation of jobcrawl.JobExtractor.
type JobExtractor struct {
	ExtractJobFieldsFn func(text string) (*jobcrawl.JobFields, error)
}

func (e *JobExtractor) ExtractJobFields(text string) (*jobcrawl.JobFields, error) {
	return e.ExtractJobFieldsFn(text)
}
