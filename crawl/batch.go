package crawl

import (
	"context"
	"sync"

	"github.com/dabrock/jobcrawl"
	"golang.org/x/sync/errgroup"
)

// Batch fetches multiple URLs concurrently through a Service. The pipeline
// itself stays single-request; Batch is the caller-side layer that runs
// independent pipeline invocations in parallel.
type Batch struct {
	// Service runs each individual fetch. Required.
	Service *Service

	// Limiter throttles requests per host. Nil disables throttling.
	Limiter *DomainLimiter

	// Concurrency bounds the number of in-flight fetches. Values < 1
	// mean 1.
	Concurrency int
}

// FetchAll fetches every URL and returns the successful results in input
// order. Per-URL failures are reported through progress and skipped; the
// returned error is non-nil only when the context is canceled.
func (b *Batch) FetchAll(ctx context.Context, urls []string, progress jobcrawl.FetchProgressFunc) ([]*jobcrawl.FetchResult, error) {
	concurrency := b.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]*jobcrawl.FetchResult, len(urls))

	var mu sync.Mutex
	completed := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, u := range urls {
		g.Go(func() error {
			if b.Limiter != nil {
				if err := b.Limiter.Wait(ctx, u); err != nil {
					return err
				}
			}

			result, err := b.Service.Fetch(ctx, u)

			mu.Lock()
			completed++
			done := completed
			if err == nil {
				results[i] = result
			}
			mu.Unlock()

			if progress != nil {
				progress(jobcrawl.FetchProgress{
					URL:       u,
					Completed: done,
					Total:     len(urls),
					Err:       err,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fetched := make([]*jobcrawl.FetchResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			fetched = append(fetched, r)
		}
	}
	return fetched, nil
}
