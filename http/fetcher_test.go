package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dabrock/jobcrawl"
	jobhttp "github.com/dabrock/jobcrawl/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body, status and content type from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := jobhttp.NewFetcher()

		resp, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, server.URL, resp.RequestedURL)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "text/html; charset=utf-8", resp.ContentType)
		assert.Equal(t, "<html><body>Hello World</body></html>", string(resp.Body))
	})

	t.Run("sends identifying user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer server.Close()

		fetcher := jobhttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, jobhttp.DefaultUserAgent, gotUA)
	})

	t.Run("follows redirects and reports the final URL", func(t *testing.T) {
		t.Parallel()

		target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html>final</html>"))
		}))
		defer target.Close()

		redirector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, target.URL+"/landing", http.StatusFound)
		}))
		defer redirector.Close()

		fetcher := jobhttp.NewFetcher()

		resp, err := fetcher.Fetch(context.Background(), redirector.URL)
		require.NoError(t, err)
		assert.Equal(t, redirector.URL, resp.RequestedURL)
		assert.Equal(t, target.URL+"/landing", resp.FinalURL)
	})

	t.Run("rejects invalid URL without a network call", func(t *testing.T) {
		t.Parallel()

		fetcher := jobhttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), "ftp://example.com/file")
		require.Error(t, err)
		assert.Equal(t, jobcrawl.EINVALID, jobcrawl.ErrorCode(err))
	})

	t.Run("rejects oversized Content-Length before reading the body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Header().Set("Content-Length", "20000000")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		fetcher := jobhttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, jobcrawl.ETOOLARGE, jobcrawl.ErrorCode(err))
	})

	t.Run("rejects oversized body when no Content-Length header is sent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			flusher := w.(http.Flusher)
			// Flush after the first chunk so the server streams the
			// response without a Content-Length header.
			_, _ = w.Write([]byte(strings.Repeat("a", 100)))
			flusher.Flush()
			_, _ = w.Write([]byte(strings.Repeat("b", 100)))
		}))
		defer server.Close()

		fetcher := jobhttp.NewFetcher(jobhttp.WithMaxContentLength(150))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, jobcrawl.ETOOLARGE, jobcrawl.ErrorCode(err))
	})

	t.Run("rejects unsupported content types", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"not":"html"}`))
		}))
		defer server.Close()

		fetcher := jobhttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, jobcrawl.EUNSUPPORTED, jobcrawl.ErrorCode(err))
	})

	t.Run("accepts text/plain", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("plain text"))
		}))
		defer server.Close()

		fetcher := jobhttp.NewFetcher()

		resp, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "plain text", string(resp.Body))
	})

	t.Run("maps non-2xx status codes to unavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		fetcher := jobhttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, jobcrawl.EUNAVAILABLE, jobcrawl.ErrorCode(err))
		assert.Contains(t, jobcrawl.ErrorMessage(err), "404")
	})

	t.Run("maps elapsed timeout to timeout error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("too late"))
		}))
		defer server.Close()

		fetcher := jobhttp.NewFetcher(jobhttp.WithTimeout(20 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, jobcrawl.ETIMEOUT, jobcrawl.ErrorCode(err))
	})

	t.Run("maps unreachable host to unavailable", func(t *testing.T) {
		t.Parallel()

		fetcher := jobhttp.NewFetcher(jobhttp.WithTimeout(time.Second))

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
		assert.Equal(t, jobcrawl.EUNAVAILABLE, jobcrawl.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := jobhttp.NewFetcher()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})
}

// Compile-time verification that Fetcher implements jobcrawl.Fetcher
var _ jobcrawl.Fetcher = (*jobhttp.Fetcher)(nil)
