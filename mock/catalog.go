package mock

import (
	"context"

	"github.com/fwojciec/feedscan"
)

var _ feedscan.Catalog = (*Catalog)(nil)

// Catalog is a mock implementation of feedscan.Catalog.
type Catalog struct {
	JobsFn             func(ctx context.Context) ([]*feedscan.Job, error)
	FindByTeamFn       func(ctx context.Context, teamQuery string) ([]*feedscan.Job, error)
	FindByTeamAndJobFn func(ctx context.Context, teamQuery, jobQuery string) ([]*feedscan.Job, error)
	SummarizeByTeamFn  func(ctx context.Context) (map[string]int, error)
}

func (c *Catalog) Jobs(ctx context.Context) ([]*feedscan.Job, error) {
	return c.JobsFn(ctx)
}

func (c *Catalog) FindByTeam(ctx context.Context, teamQuery string) ([]*feedscan.Job, error) {
	return c.FindByTeamFn(ctx, teamQuery)
}

func (c *Catalog) FindByTeamAndJob(ctx context.Context, teamQuery, jobQuery string) ([]*feedscan.Job, error) {
	return c.FindByTeamAndJobFn(ctx, teamQuery, jobQuery)
}

func (c *Catalog) SummarizeByTeam(ctx context.Context) (map[string]int, error) {
	return c.SummarizeByTeamFn(ctx)
}
