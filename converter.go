package jobcrawl

// Converter transforms extracted content HTML into another representation.
type Converter interface {
	// Convert transforms HTML content into the target format.
	Convert(html string) (string, error)
}
