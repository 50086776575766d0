// Package crawl composes the extraction pipeline: URL validation, optional
// allowlist enforcement, bounded fetching, content and metadata extraction,
// and job-field derivation. All collaborators are injected; the package
// holds no process-wide state.
package crawl

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/dabrock/jobcrawl"
)

// Service runs the single-page extraction pipeline. Each call is
// independent and touches no shared mutable state; callers that want
// concurrency run multiple calls in parallel (see Batch).
type Service struct {
	// Fetcher retrieves raw content. Required.
	Fetcher jobcrawl.Fetcher

	// Content extracts the main readable text. Required.
	Content jobcrawl.ContentExtractor

	// Metadata extracts page metadata. Required.
	Metadata jobcrawl.MetadataExtractor

	// Jobs derives job-posting fields from extracted text.
	// Required for ExtractJobPosting.
	Jobs jobcrawl.JobExtractor

	// Language optionally fills Metadata.Language by detection when the
	// page declares no language. Nil disables detection.
	Language jobcrawl.LanguageDetector

	// Allowlist is consulted by ExtractJobPosting when EnforceAllowlist
	// is set.
	Allowlist jobcrawl.Allowlist

	// EnforceAllowlist makes ExtractJobPosting refuse URLs whose host is
	// not on the Allowlist, so the safety gate cannot be bypassed by
	// omission.
	EnforceAllowlist bool
}

// Fetch retrieves a URL and extracts its content and metadata.
//
// Fails with EINVALID for a malformed URL (before any network call),
// ETIMEOUT / EUNAVAILABLE for network failures, ETOOLARGE for oversized
// responses, and EUNSUPPORTED for non-processable content types. A failed
// fetch yields no partial result.
func (s *Service) Fetch(ctx context.Context, url string) (*jobcrawl.FetchResult, error) {
	resp, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	html := string(resp.Body)

	content, err := s.Content.Extract(html)
	if err != nil {
		return nil, err
	}

	metadata, err := s.Metadata.ExtractMetadata(html)
	if err != nil {
		return nil, err
	}

	if s.Language != nil && metadata.Language == "" {
		metadata.Language = s.Language.Detect(content.Text)
	}

	return &jobcrawl.FetchResult{
		RequestedURL: resp.RequestedURL,
		FinalURL:     resp.FinalURL,
		StatusCode:   resp.StatusCode,
		ContentType:  resp.ContentType,
		Title:        content.Title,
		Content:      content.Text,
		ContentHTML:  content.ContentHTML,
		ContentHash:  fmt.Sprintf("%016x", xxhash.Sum64(resp.Body)),
		Truncated:    content.Truncated,
		Metadata:     *metadata,
	}, nil
}

// ExtractJobPosting fetches a job posting URL and derives structured job
// fields from the extracted text. When EnforceAllowlist is set, a URL
// outside the allowlist fails with EUNAUTHORIZED before any network call.
func (s *Service) ExtractJobPosting(ctx context.Context, url string) (*jobcrawl.JobPosting, error) {
	if s.EnforceAllowlist && !s.Allowlist.Allowed(url) {
		return nil, jobcrawl.Errorf(jobcrawl.EUNAUTHORIZED,
			"domain not allowed for job crawling: %s", url)
	}

	result, err := s.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	fields, err := s.Jobs.ExtractJobFields(result.Content)
	if err != nil {
		return nil, err
	}

	return &jobcrawl.JobPosting{
		Title:        result.Title,
		Description:  result.Content,
		Company:      fields.Company,
		Location:     fields.Location,
		Salary:       fields.Salary,
		Requirements: fields.Requirements,
		Benefits:     fields.Benefits,
		SourceURL:    url,
	}, nil
}
