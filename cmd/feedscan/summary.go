package main

import (
	"fmt"

	"github.com/fwojciec/feedscan"
)

// Run executes the summary command.
func (c *SummaryCmd) Run(deps *Dependencies) error {
	summary, err := deps.Catalog.SummarizeByTeam(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", feedscan.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Job summary by team:")
	fmt.Fprintln(deps.Stdout)
	fmt.Fprint(deps.Stdout, feedscan.FormatSummary(summary))
	return nil
}
