// Package slog provides logging decorators for pipeline components.
// Core implementations stay silent; observability is layered on here.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/dabrock/jobcrawl"
	"github.com/google/uuid"
)

// Ensure LoggingFetcher implements jobcrawl.Fetcher at compile time.
var _ jobcrawl.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging. Each fetch gets a
// request id so batch runs can be correlated per URL.
type LoggingFetcher struct {
	next   jobcrawl.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next jobcrawl.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (*jobcrawl.Response, error) {
	requestID := uuid.NewString()
	begin := time.Now()

	resp, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch failed",
			"request_id", requestID,
			"url", url,
			"code", jobcrawl.ErrorCode(err),
			"error", jobcrawl.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	f.logger.Info("fetched",
		"request_id", requestID,
		"url", url,
		"final_url", resp.FinalURL,
		"status", resp.StatusCode,
		"bytes", len(resp.Body),
		"duration", time.Since(begin),
	)
	return resp, nil
}
