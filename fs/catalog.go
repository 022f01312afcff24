// Package fs implements the feed catalog over a directory of XML files.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/feedscan"
	"golang.org/x/sync/errgroup"
)

// Ensure Catalog implements feedscan.Catalog at compile time.
var _ feedscan.Catalog = (*Catalog)(nil)

// Catalog answers queries over the job records extracted from every .xml
// file in a directory. The directory is scanned once, on first query, and
// the aggregated record list is reused for the lifetime of the catalog.
type Catalog struct {
	// Concurrency bounds parallel per-file extraction. Values below 1 keep
	// the scan sequential. Per-file extraction shares no state, and records
	// are concatenated in sorted-file-name order regardless of completion
	// order, so output is deterministic at any setting.
	Concurrency int

	// Progress, if set, is called once per processed file.
	Progress feedscan.ScanProgressFunc

	dir       string
	extractor feedscan.Extractor
	logger    *slog.Logger

	scanOnce sync.Once
	jobs     []*feedscan.Job
	scanErr  error
}

// NewCatalog creates a Catalog over the given feeds directory.
// If logger is nil, logging is discarded.
func NewCatalog(dir string, extractor feedscan.Extractor, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Catalog{
		dir:       dir,
		extractor: extractor,
		logger:    logger,
	}
}

// Jobs returns every record extracted from the feed directory in sorted
// file-name order. The first call performs the scan; subsequent calls reuse
// the memoized result.
func (c *Catalog) Jobs(ctx context.Context) ([]*feedscan.Job, error) {
	c.scanOnce.Do(func() {
		c.jobs, c.scanErr = c.scan(ctx)
	})
	return c.jobs, c.scanErr
}

// FindByTeam returns the records matching the team query.
func (c *Catalog) FindByTeam(ctx context.Context, teamQuery string) ([]*feedscan.Job, error) {
	jobs, err := c.Jobs(ctx)
	if err != nil {
		return nil, err
	}

	matched := []*feedscan.Job{}
	for _, job := range jobs {
		if job.MatchesTeam(teamQuery) {
			matched = append(matched, job)
		}
	}
	return matched, nil
}

// FindByTeamAndJob returns the records matching both queries.
func (c *Catalog) FindByTeamAndJob(ctx context.Context, teamQuery, jobQuery string) ([]*feedscan.Job, error) {
	jobs, err := c.Jobs(ctx)
	if err != nil {
		return nil, err
	}

	matched := []*feedscan.Job{}
	for _, job := range jobs {
		if job.MatchesTeam(teamQuery) && job.MatchesJob(jobQuery) {
			matched = append(matched, job)
		}
	}
	return matched, nil
}

// SummarizeByTeam returns the number of records per team key.
func (c *Catalog) SummarizeByTeam(ctx context.Context) (map[string]int, error) {
	jobs, err := c.Jobs(ctx)
	if err != nil {
		return nil, err
	}

	summary := make(map[string]int)
	for _, job := range jobs {
		summary[job.TeamKey()]++
	}
	return summary, nil
}

// scan extracts records from every feed file in the directory. A file that
// cannot be read or parsed contributes zero records and never aborts the
// batch; only directory-level failures are returned as errors.
func (c *Catalog) scan(ctx context.Context) ([]*feedscan.Job, error) {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return nil, fmt.Errorf("creating feeds directory %q: %w", c.dir, err)
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("reading feeds directory %q: %w", c.dir, err)
	}

	// ReadDir returns entries sorted by name, which fixes the record order.
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".xml" {
			files = append(files, entry.Name())
		}
	}

	if len(files) == 0 {
		c.logger.Info("no feed files found", "dir", c.dir)
		return []*feedscan.Job{}, nil
	}

	concurrency := c.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	// Results are slotted by position so concatenation order does not
	// depend on completion order.
	results := make([][]*feedscan.Job, len(files))
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, name := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			jobs, err := c.extractFile(name)
			results[i] = jobs
			if c.Progress != nil {
				c.Progress(feedscan.ScanProgress{
					File:      name,
					Jobs:      len(jobs),
					Completed: int(completed.Add(1)),
					Total:     len(files),
					Error:     err,
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []*feedscan.Job
	for _, jobs := range results {
		all = append(all, jobs...)
	}
	c.logger.Info("feed scan complete", "dir", c.dir, "files", len(files), "jobs", len(all))
	return all, nil
}

// extractFile extracts one feed file, recovering per-file failures locally.
func (c *Catalog) extractFile(name string) ([]*feedscan.Job, error) {
	data, err := os.ReadFile(filepath.Join(c.dir, name))
	if err != nil {
		c.logger.Warn("skipping unreadable feed file", "file", name, "err", err)
		return nil, err
	}

	jobs, err := c.extractor.Extract(data, name)
	if err != nil {
		c.logger.Warn("skipping feed file", "file", name, "err", feedscan.ErrorMessage(err))
		return nil, err
	}
	return jobs, nil
}
