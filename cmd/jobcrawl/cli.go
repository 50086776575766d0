package main

import (
	"context"
	"io"
	"time"

	"github.com/dabrock/jobcrawl"
	"github.com/dabrock/jobcrawl/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Service   *crawl.Service
	Batch     *crawl.Batch
	Converter jobcrawl.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout time.Duration `default:"30s" help:"Fetch timeout"`
	MaxSize int64         `name:"max-size" default:"10000000" help:"Response size cap in bytes"`
	Verbose bool          `short:"v" help:"Log fetch activity to stderr"`

	Fetch    FetchCmd    `cmd:"" help:"Fetch URLs and extract their content"`
	Job      JobCmd      `cmd:"" help:"Extract a structured job posting from a job board URL"`
	Validate ValidateCmd `cmd:"" help:"Check whether a URL is well-formed"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URLs           []string `arg:"" name:"url" help:"URLs to fetch"`
	Format         string   `default:"json" enum:"json,text,markdown" help:"Output format"`
	Extractor      string   `default:"selectors" enum:"selectors,trafilatura" help:"Content extraction strategy"`
	DetectLanguage bool     `help:"Detect the content language when the page declares none"`
	Concurrency    int      `short:"c" default:"3" help:"Concurrent fetch limit for multiple URLs"`
	RPS            float64  `default:"1" help:"Max requests per second per host"`
}

// JobCmd is the "job" subcommand.
type JobCmd struct {
	URL         string `arg:"" help:"Job posting URL"`
	NoAllowlist bool   `help:"Skip the job board domain allowlist check"`
}

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	URL string `arg:"" help:"URL to validate"`
}
