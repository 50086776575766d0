package jobcrawl

// JobPosting holds structured fields extracted from a job posting page.
type JobPosting struct {
	// Title is the job title (the page title).
	Title string `json:"title"`

	// Description is the full extracted posting text.
	Description string `json:"description"`

	// Company is the hiring company name, empty when not found.
	Company string `json:"company"`

	// Location is the job location, empty when not found.
	Location string `json:"location"`

	// Salary is the salary information, empty when not found.
	Salary string `json:"salary"`

	// Requirements lists extracted requirement items in document order,
	// at most MaxJobListItems entries. Empty when no requirements
	// section is recognized.
	Requirements []string `json:"requirements"`

	// Benefits lists extracted benefit items in document order, at most
	// MaxJobListItems entries. Empty when no benefits section is
	// recognized.
	Benefits []string `json:"benefits"`

	// SourceURL is the URL the posting was extracted from.
	SourceURL string `json:"url"`
}

// MaxJobListItems caps the requirements and benefits lists.
const MaxJobListItems = 10

// JobFields holds the job-specific fields derived from extracted text.
type JobFields struct {
	Company      string
	Location     string
	Salary       string
	Requirements []string
	Benefits     []string
}

// JobExtractor derives job-specific fields from already-extracted plain
// text. It operates on text, not the original DOM; a missing field or
// section is an empty value, never an error.
type JobExtractor interface {
	ExtractJobFields(text string) (*JobFields, error)
}
