package feedscan

import (
	"fmt"
	"sort"
	"strings"
)

// FormatJobs formats job records for console display as numbered blocks.
// Absent fields render as "N/A"; the team line is only printed when the
// record carries a team identifier.
func FormatJobs(jobs []*Job) string {
	if len(jobs) == 0 {
		return "No jobs found."
	}

	var b strings.Builder
	for i, job := range jobs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Job #%d\n", i+1)
		fmt.Fprintf(&b, "  File:           %s\n", job.SourceFile)
		fmt.Fprintf(&b, "  Job ID:         %s\n", orNA(job.JobID))
		fmt.Fprintf(&b, "  Partner Job ID: %s\n", orNA(job.PartnerJobID))
		fmt.Fprintf(&b, "  Reference ID:   %s\n", orNA(job.ReferenceID))
		fmt.Fprintf(&b, "  Job Name:       %s\n", orNA(job.JobName))
		fmt.Fprintf(&b, "  Company Name:   %s\n", orNA(job.CompanyName))
		fmt.Fprintf(&b, "  Company ID:     %s\n", orNA(job.CompanyID))
		if job.TeamIdentifier != "" {
			fmt.Fprintf(&b, "  Team:           %s\n", job.TeamIdentifier)
		}
	}
	return b.String()
}

// FormatSummary formats a team summary as one line per team, ordered by
// descending count with alphabetical tie-breaking for deterministic output.
func FormatSummary(summary map[string]int) string {
	if len(summary) == 0 {
		return "No jobs found."
	}

	teams := make([]string, 0, len(summary))
	for team := range summary {
		teams = append(teams, team)
	}
	sort.Slice(teams, func(i, j int) bool {
		if summary[teams[i]] != summary[teams[j]] {
			return summary[teams[i]] > summary[teams[j]]
		}
		return teams[i] < teams[j]
	})

	var b strings.Builder
	for _, team := range teams {
		fmt.Fprintf(&b, "%s: %d job(s)\n", team, summary[team])
	}
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
