package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/dabrock/jobcrawl/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request per host proceeds immediately", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1.0)

		begin := time.Now()
		err := limiter.Wait(context.Background(), "https://example.com/a")
		require.NoError(t, err)
		assert.Less(t, time.Since(begin), 100*time.Millisecond)
	})

	t.Run("throttles repeated requests to the same host", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10.0) // 100ms between requests

		require.NoError(t, limiter.Wait(context.Background(), "https://example.com/a"))

		begin := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "https://example.com/b"))
		assert.GreaterOrEqual(t, time.Since(begin), 50*time.Millisecond)
	})

	t.Run("different hosts do not share a bucket", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1.0)

		require.NoError(t, limiter.Wait(context.Background(), "https://one.example.com/"))

		begin := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "https://two.example.com/"))
		assert.Less(t, time.Since(begin), 100*time.Millisecond)
	})

	t.Run("returns an error when the context is canceled while waiting", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(0.1) // 10s between requests

		require.NoError(t, limiter.Wait(context.Background(), "https://example.com/"))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "https://example.com/")
		require.Error(t, err)
	})
}
