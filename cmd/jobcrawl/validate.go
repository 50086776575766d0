package main

import (
	"fmt"

	"github.com/dabrock/jobcrawl"
)

// Run executes the validate command.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	if !jobcrawl.ValidateURL(c.URL) {
		fmt.Fprintf(deps.Stdout, "%s: invalid (must be an absolute http or https URL)\n", c.URL)
		return jobcrawl.Errorf(jobcrawl.EINVALID, "invalid URL: %s", c.URL)
	}

	fmt.Fprintf(deps.Stdout, "%s: valid\n", c.URL)
	if jobcrawl.DefaultJobAllowlist.Allowed(c.URL) {
		fmt.Fprintln(deps.Stdout, "domain is on the job board allowlist")
	}
	return nil
}
