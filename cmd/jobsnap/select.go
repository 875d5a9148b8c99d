package main

import (
	"fmt"

	"github.com/fwojciec/jobsnap"
)

// Run executes the select command.
func (c *SelectCmd) Run(deps *Dependencies) error {
	outcome := deps.Scraper.CaptureSelection(deps.Ctx, c.URL)
	if !outcome.Success {
		fmt.Fprintf(deps.Stderr, "error: %s\n", outcome.Error)
		return jobsnap.Errorf(jobsnap.EINVALID, "%s", outcome.Error)
	}
	if outcome.Data.Description == "" {
		fmt.Fprintln(deps.Stderr, "Nothing is selected on the page.")
		return nil
	}
	fmt.Fprintln(deps.Stdout, outcome.Data.Description)
	return nil
}
