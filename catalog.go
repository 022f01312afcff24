package feedscan

import "context"

// Catalog answers queries over the full set of records extracted from a
// feed directory. The record set is computed once, on first query, and
// reused for the lifetime of the catalog; source files are assumed static
// for the duration of the process.
type Catalog interface {
	// Jobs returns every record extracted from the feed directory, in a
	// deterministic order (files sorted by name).
	Jobs(ctx context.Context) ([]*Job, error)

	// FindByTeam returns the records matching the team query.
	FindByTeam(ctx context.Context, teamQuery string) ([]*Job, error)

	// FindByTeamAndJob returns the records matching both the team query
	// and the job query.
	FindByTeamAndJob(ctx context.Context, teamQuery, jobQuery string) ([]*Job, error)

	// SummarizeByTeam returns the number of records per team key.
	SummarizeByTeam(ctx context.Context) (map[string]int, error)
}

// ScanProgress reports progress while a feed directory is being scanned.
type ScanProgress struct {
	File      string
	Jobs      int
	Completed int
	Total     int
	Error     error
}

// ScanProgressFunc is called as feed files are processed.
type ScanProgressFunc func(ScanProgress)
