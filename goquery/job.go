package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dabrock/jobcrawl"
)

// Selector lists for structured job fields, tried in order. They operate on
// a reparse of the already-extracted plain text, so they only match when
// markup survived extraction; a miss yields an empty field.
var (
	companySelectors  = []string{".company", "#company", `[itemprop="hiringOrganization"]`}
	locationSelectors = []string{".location", "#location", `[itemprop="jobLocation"]`}
	salarySelectors   = []string{".salary", "#salary", `[itemprop="baseSalary"]`}
)

// Heading-synonym patterns for list sections. Each captures the block
// between the heading line and the next blank line. The first matching
// pattern wins.
var (
	requirementPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)requirements?:?\s*\n(.*?)(?:\n\n|$)`),
		regexp.MustCompile(`(?is)qualifications?:?\s*\n(.*?)(?:\n\n|$)`),
		regexp.MustCompile(`(?is)you should have:?\s*\n(.*?)(?:\n\n|$)`),
	}
	benefitPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)benefits?:?\s*\n(.*?)(?:\n\n|$)`),
		regexp.MustCompile(`(?is)we offer:?\s*\n(.*?)(?:\n\n|$)`),
		regexp.MustCompile(`(?is)perks:?\s*\n(.*?)(?:\n\n|$)`),
	}
)

// bulletSplitRe splits a captured section block into items on bullet markers
// or bare newlines.
var bulletSplitRe = regexp.MustCompile(`\n\s*[-•*]\s*|\n`)

// bulletTrimCutset strips a leading bullet marker left on the first item of
// a block (the split only consumes markers that follow a newline).
const bulletTrimCutset = "-•* \t"

// Ensure JobExtractor implements jobcrawl.JobExtractor at compile time.
var _ jobcrawl.JobExtractor = (*JobExtractor)(nil)

// JobExtractor derives job-posting fields from extracted plain text:
// company, location and salary via selector lookups, requirements and
// benefits via heading-synonym section matching.
type JobExtractor struct{}

// NewJobExtractor creates a new JobExtractor.
func NewJobExtractor() *JobExtractor {
	return &JobExtractor{}
}

// ExtractJobFields extracts job-specific fields from text. Fields that
// cannot be found are empty values, never errors.
func (e *JobExtractor) ExtractJobFields(text string) (*jobcrawl.JobFields, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, jobcrawl.Errorf(jobcrawl.EINVALID, "failed to parse text: %v", err)
	}

	return &jobcrawl.JobFields{
		Company:      firstSelectorText(doc, companySelectors),
		Location:     firstSelectorText(doc, locationSelectors),
		Salary:       firstSelectorText(doc, salarySelectors),
		Requirements: extractSection(text, requirementPatterns),
		Benefits:     extractSection(text, benefitPatterns),
	}, nil
}

// firstSelectorText returns the trimmed text of the first element matched by
// any of the selectors, in selector priority order.
func firstSelectorText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return strings.TrimSpace(sel.Text())
		}
	}
	return ""
}

// extractSection finds the first matching heading pattern, splits the
// captured block into items, and returns at most MaxJobListItems of them in
// document order.
func extractSection(text string, patterns []*regexp.Regexp) []string {
	items := []string{}

	for _, pattern := range patterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		for _, fragment := range bulletSplitRe.Split(match[1], -1) {
			fragment = strings.TrimSpace(strings.TrimLeft(fragment, bulletTrimCutset))
			if fragment != "" {
				items = append(items, fragment)
			}
		}
		break
	}

	if len(items) > jobcrawl.MaxJobListItems {
		items = items[:jobcrawl.MaxJobListItems]
	}
	return items
}
