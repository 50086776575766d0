package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dabrock/jobcrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobExtractor_ExtractJobFields(t *testing.T) {
	t.Parallel()

	t.Run("extracts requirements and benefits from bullet sections", func(t *testing.T) {
		t.Parallel()

		text := "Requirements:\n- 5 years Python\n- FastAPI\n\nBenefits:\n- Remote"

		fields, err := goquery.NewJobExtractor().ExtractJobFields(text)

		require.NoError(t, err)
		assert.Equal(t, []string{"5 years Python", "FastAPI"}, fields.Requirements)
		assert.Equal(t, []string{"Remote"}, fields.Benefits)
	})

	t.Run("recognizes heading synonyms case-insensitively", func(t *testing.T) {
		t.Parallel()

		text := "QUALIFICATIONS\n* Degree in CS\n* Team player\n\nwe offer:\n• Gym membership\n• Free coffee"

		fields, err := goquery.NewJobExtractor().ExtractJobFields(text)

		require.NoError(t, err)
		assert.Equal(t, []string{"Degree in CS", "Team player"}, fields.Requirements)
		assert.Equal(t, []string{"Gym membership", "Free coffee"}, fields.Benefits)
	})

	t.Run("caps lists at ten items in document order", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		sb.WriteString("Requirements:\n")
		for i := 1; i <= 15; i++ {
			fmt.Fprintf(&sb, "- item %d\n", i)
		}
		sb.WriteString("\nother text")

		fields, err := goquery.NewJobExtractor().ExtractJobFields(sb.String())

		require.NoError(t, err)
		require.Len(t, fields.Requirements, 10)
		assert.Equal(t, "item 1", fields.Requirements[0])
		assert.Equal(t, "item 10", fields.Requirements[9])
	})

	t.Run("returns empty lists when no heading matches", func(t *testing.T) {
		t.Parallel()

		fields, err := goquery.NewJobExtractor().ExtractJobFields("Nothing structured here at all.")

		require.NoError(t, err)
		assert.Empty(t, fields.Requirements)
		assert.Empty(t, fields.Benefits)
	})

	t.Run("extracts company, location and salary from surviving markup", func(t *testing.T) {
		t.Parallel()

		text := `<div class="company">Tech Corp</div>` +
			`<div id="location">Berlin, Germany</div>` +
			`<div itemprop="baseSalary">70k-90k EUR</div>`

		fields, err := goquery.NewJobExtractor().ExtractJobFields(text)

		require.NoError(t, err)
		assert.Equal(t, "Tech Corp", fields.Company)
		assert.Equal(t, "Berlin, Germany", fields.Location)
		assert.Equal(t, "70k-90k EUR", fields.Salary)
	})

	t.Run("leaves selector fields empty for plain text", func(t *testing.T) {
		t.Parallel()

		fields, err := goquery.NewJobExtractor().ExtractJobFields("A plain text job description.")

		require.NoError(t, err)
		assert.Empty(t, fields.Company)
		assert.Empty(t, fields.Location)
		assert.Empty(t, fields.Salary)
	})
}
