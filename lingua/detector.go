// Package lingua provides statistical language detection for pages that
// declare no language in their markup.
package lingua

import (
	"strings"

	"github.com/dabrock/jobcrawl"
	"github.com/pemistahl/lingua-go"
)

// minTextLength is the minimum input size for a meaningful detection;
// shorter texts yield no result rather than a guess.
const minTextLength = 20

// Ensure Detector implements jobcrawl.LanguageDetector at compile time.
var _ jobcrawl.LanguageDetector = (*Detector)(nil)

// Detector detects the language of extracted text. It is restricted to the
// languages the crawler's job boards publish in, which keeps the model
// small and the detection accurate.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.German,
			lingua.French,
			lingua.Spanish,
			lingua.Dutch,
		).
		Build()

	return &Detector{detector: detector}
}

// Detect returns the ISO 639-1 code of the text's language, or an empty
// string when the text is too short or no language can be determined.
func (d *Detector) Detect(text string) string {
	if len(text) < minTextLength {
		return ""
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}

	return strings.ToLower(lang.IsoCode639_1().String())
}
