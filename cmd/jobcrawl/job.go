package main

import (
	"fmt"

	"github.com/dabrock/jobcrawl"
)

// Run executes the job command.
func (c *JobCmd) Run(deps *Dependencies) error {
	posting, err := deps.Service.ExtractJobPosting(deps.Ctx, c.URL)
	if err != nil {
		if jobcrawl.ErrorCode(err) == jobcrawl.EUNAUTHORIZED {
			fmt.Fprintln(deps.Stderr, "Domain not allowed for job crawling. Only trusted job boards are supported (see --no-allowlist).")
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobcrawl.ErrorMessage(err))
		}
		return err
	}

	return writeJSON(deps, posting)
}
