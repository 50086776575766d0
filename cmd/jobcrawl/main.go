package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/dabrock/jobcrawl"
	"github.com/dabrock/jobcrawl/crawl"
	jobgoquery "github.com/dabrock/jobcrawl/goquery"
	"github.com/dabrock/jobcrawl/htmltomarkdown"
	jobhttp "github.com/dabrock/jobcrawl/http"
	"github.com/dabrock/jobcrawl/lingua"
	"github.com/dabrock/jobcrawl/opengraph"
	jobslog "github.com/dabrock/jobcrawl/slog"
	"github.com/dabrock/jobcrawl/trafilatura"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobcrawl"),
		kong.Description("Fetch web pages and extract readable content and job postings"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobcrawl --help' to see available commands")
	}
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire the pipeline. Everything is constructed here and passed down;
	// no package holds a process-wide instance.
	var fetcher jobcrawl.Fetcher = jobhttp.NewFetcher(
		jobhttp.WithTimeout(cli.Timeout),
		jobhttp.WithMaxContentLength(cli.MaxSize),
	)
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = jobslog.NewLoggingFetcher(fetcher, logger)
	}

	var content jobcrawl.ContentExtractor = jobgoquery.NewContentExtractor()
	if cli.Fetch.Extractor == "trafilatura" {
		content = trafilatura.NewContentExtractor()
	}

	service := &crawl.Service{
		Fetcher:          fetcher,
		Content:          content,
		Metadata:         opengraph.NewFallback(jobgoquery.NewMetadataExtractor()),
		Jobs:             jobgoquery.NewJobExtractor(),
		Allowlist:        jobcrawl.DefaultJobAllowlist,
		EnforceAllowlist: !cli.Job.NoAllowlist,
	}
	if cli.Fetch.DetectLanguage {
		service.Language = lingua.NewDetector()
	}

	deps.Service = service
	deps.Batch = &crawl.Batch{
		Service:     service,
		Limiter:     crawl.NewDomainLimiter(cli.Fetch.RPS),
		Concurrency: cli.Fetch.Concurrency,
	}
	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}
