// Package slog provides logging decorators for feedscan services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/feedscan"
)

// Ensure LoggingCatalog implements feedscan.Catalog.
var _ feedscan.Catalog = (*LoggingCatalog)(nil)

// LoggingCatalog wraps a Catalog with per-query logging.
type LoggingCatalog struct {
	next   feedscan.Catalog
	logger *slog.Logger
}

// NewLoggingCatalog creates a new LoggingCatalog.
func NewLoggingCatalog(next feedscan.Catalog, logger *slog.Logger) *LoggingCatalog {
	return &LoggingCatalog{next: next, logger: logger}
}

// Jobs delegates to the wrapped catalog and logs the operation.
func (c *LoggingCatalog) Jobs(ctx context.Context) (jobs []*feedscan.Job, err error) {
	defer func(begin time.Time) {
		c.logger.Info("list jobs",
			"count", len(jobs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Jobs(ctx)
}

// FindByTeam delegates to the wrapped catalog and logs the operation.
func (c *LoggingCatalog) FindByTeam(ctx context.Context, teamQuery string) (jobs []*feedscan.Job, err error) {
	defer func(begin time.Time) {
		c.logger.Info("find by team",
			"team", teamQuery,
			"count", len(jobs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.FindByTeam(ctx, teamQuery)
}

// FindByTeamAndJob delegates to the wrapped catalog and logs the operation.
func (c *LoggingCatalog) FindByTeamAndJob(ctx context.Context, teamQuery, jobQuery string) (jobs []*feedscan.Job, err error) {
	defer func(begin time.Time) {
		c.logger.Info("find by team and job",
			"team", teamQuery,
			"job", jobQuery,
			"count", len(jobs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.FindByTeamAndJob(ctx, teamQuery, jobQuery)
}

// SummarizeByTeam delegates to the wrapped catalog and logs the operation.
func (c *LoggingCatalog) SummarizeByTeam(ctx context.Context) (summary map[string]int, err error) {
	defer func(begin time.Time) {
		c.logger.Info("summarize by team",
			"teams", len(summary),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.SummarizeByTeam(ctx)
}
