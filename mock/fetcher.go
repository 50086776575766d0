package mock

import (
	"context"

	"github.com/dabrock/jobcrawl"
)

var _ jobcrawl.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of jobcrawl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*jobcrawl.Response, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*jobcrawl.Response, error) {
	return f.FetchFn(ctx, url)
}
