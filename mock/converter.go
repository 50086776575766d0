package mock

import "github.com/dabrock/jobcrawl"

var _ jobcrawl.Converter = (*Converter)(nil)

// Converter is a mock implementation of jobcrawl.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ jobcrawl.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of jobcrawl.LanguageDetector.
type LanguageDetector struct {
	DetectFn func(text string) string
}

func (d *LanguageDetector) Detect(text string) string {
	return d.DetectFn(text)
}
