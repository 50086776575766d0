package main

import (
	"encoding/json"
	"fmt"

	"github.com/dabrock/jobcrawl"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	if len(c.URLs) == 1 {
		result, err := deps.Service.Fetch(deps.Ctx, c.URLs[0])
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobcrawl.ErrorMessage(err))
			return err
		}
		return c.output(deps, result)
	}

	progress := func(p jobcrawl.FetchProgress) {
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", p.URL, jobcrawl.ErrorMessage(p.Err))
			return
		}
		fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", p.Completed, p.Total, p.URL)
	}

	results, err := deps.Batch.FetchAll(deps.Ctx, c.URLs, progress)
	if err != nil {
		return err
	}

	if c.Format == "json" {
		return writeJSON(deps, results)
	}
	for _, result := range results {
		if err := c.output(deps, result); err != nil {
			return err
		}
	}
	return nil
}

// output writes a single result in the requested format.
func (c *FetchCmd) output(deps *Dependencies, result *jobcrawl.FetchResult) error {
	switch c.Format {
	case "text":
		fmt.Fprintln(deps.Stdout, result.Title)
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, result.Content)
		return nil

	case "markdown":
		md, err := deps.Converter.Convert(result.ContentHTML)
		if err != nil {
			// No convertible region; plain text is still useful.
			md = result.Content
		}
		fmt.Fprintf(deps.Stdout, "# %s\n\n%s\n", result.Title, md)
		return nil

	default:
		return writeJSON(deps, result)
	}
}

// writeJSON writes v to stdout as indented JSON.
func writeJSON(deps *Dependencies, v any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
