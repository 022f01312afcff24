package main

import (
	"context"
	"io"

	"github.com/fwojciec/feedscan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Catalog feedscan.Catalog
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dir         string `help:"Feeds directory to scan for .xml files" env:"FEEDSCAN_DIR" default:"XMLFEEDS"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent file parse limit"`
	Verbose     bool   `short:"v" help:"Enable verbose logging"`

	All     AllCmd     `cmd:"" help:"List every job extracted from the feeds"`
	Team    TeamCmd    `cmd:"" help:"Search jobs by team"`
	Job     JobCmd     `cmd:"" help:"Search jobs by team and job identifier"`
	Summary SummaryCmd `cmd:"" help:"Show job counts per team"`
}

// AllCmd is the "all" subcommand.
type AllCmd struct{}

// TeamCmd is the "team" subcommand.
type TeamCmd struct {
	Query string `arg:"" help:"Team search query"`
}

// JobCmd is the "job" subcommand.
type JobCmd struct {
	TeamQuery string `arg:"" help:"Team search query"`
	JobQuery  string `arg:"" help:"Job search query (job ID, reference, name or partner ID)"`
}

// SummaryCmd is the "summary" subcommand.
type SummaryCmd struct{}
