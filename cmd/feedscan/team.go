package main

import (
	"fmt"

	"github.com/fwojciec/feedscan"
)

// Run executes the team command.
func (c *TeamCmd) Run(deps *Dependencies) error {
	jobs, err := deps.Catalog.FindByTeam(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", feedscan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Jobs for team %q: %d result(s)\n\n", c.Query, len(jobs))
	fmt.Fprintln(deps.Stdout, feedscan.FormatJobs(jobs))
	return nil
}
