package main

import (
	"fmt"

	"github.com/fwojciec/feedscan"
)

// Run executes the all command.
func (c *AllCmd) Run(deps *Dependencies) error {
	jobs, err := deps.Catalog.Jobs(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", feedscan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Total: %d job(s)\n\n", len(jobs))
	fmt.Fprintln(deps.Stdout, feedscan.FormatJobs(jobs))
	return nil
}
