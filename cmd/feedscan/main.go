package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/feedscan"
	"github.com/fwojciec/feedscan/etree"
	"github.com/fwojciec/feedscan/fs"
	feedslog "github.com/fwojciec/feedscan/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Catalog in use, exposed for end-to-end testing.
	Catalog feedscan.Catalog
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("feedscan"),
		kong.Description("Search job postings across XML feed files of unknown schema."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'feedscan --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	catalog := fs.NewCatalog(cli.Dir, etree.NewExtractor(), logger)
	catalog.Concurrency = cli.Concurrency
	catalog.Progress = func(p feedscan.ScanProgress) {
		if p.Error != nil {
			// Failed files are reported as warnings by the catalog logger.
			return
		}
		pct := float64(p.Completed) / float64(p.Total) * 100
		fmt.Fprintf(stderr, "[%5.1f%%] %s: %d job(s)\n", pct, p.File, p.Jobs)
	}

	m.Catalog = catalog
	deps.Catalog = catalog
	if cli.Verbose {
		deps.Catalog = feedslog.NewLoggingCatalog(catalog, logger)
	}

	return kongCtx.Run(deps)
}
