package main

import (
	"fmt"

	"github.com/fwojciec/feedscan"
)

// Run executes the job command.
func (c *JobCmd) Run(deps *Dependencies) error {
	jobs, err := deps.Catalog.FindByTeamAndJob(deps.Ctx, c.TeamQuery, c.JobQuery)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", feedscan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Job %q for team %q: %d result(s)\n\n", c.JobQuery, c.TeamQuery, len(jobs))
	fmt.Fprintln(deps.Stdout, feedscan.FormatJobs(jobs))
	return nil
}
