package zenrows_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miner "github.com/Raavan18/b2b-data-miner"
	"github.com/Raavan18/b2b-data-miner/zenrows"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFetcher(t *testing.T) {
	t.Parallel()

	t.Run("requires an API key", func(t *testing.T) {
		t.Parallel()

		_, err := zenrows.NewFetcher("")

		require.Error(t, err)
		assert.Equal(t, miner.ECONFIG, miner.ErrorCode(err))
	})
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("sends the API key and target URL without rendering by default", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "test-key", q.Get("apikey"))
			assert.Equal(t, "false", q.Get("js_render"))
			assert.Equal(t, "https://acmecorp.com/contact", q.Get("url"))
			assert.Empty(t, q.Get("wait"))
			_, _ = w.Write([]byte("<html>static</html>"))
		}))
		defer server.Close()

		fetcher, err := zenrows.NewFetcher("test-key", zenrows.WithBaseURL(server.URL))
		require.NoError(t, err)
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), "https://acmecorp.com/contact", false)
		require.NoError(t, err)
		assert.Equal(t, "<html>static</html>", html)
	})

	t.Run("requests script rendering with a settle wait", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "true", q.Get("js_render"))
			assert.Equal(t, "2000", q.Get("wait"))
			_, _ = w.Write([]byte("<html>rendered</html>"))
		}))
		defer server.Close()

		fetcher, err := zenrows.NewFetcher("test-key", zenrows.WithBaseURL(server.URL))
		require.NoError(t, err)
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), "https://acmecorp.com/contact", true)
		require.NoError(t, err)
		assert.Equal(t, "<html>rendered</html>", html)
	})

	t.Run("returns error for non-200 status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		fetcher, err := zenrows.NewFetcher("test-key", zenrows.WithBaseURL(server.URL))
		require.NoError(t, err)
		defer fetcher.Close()

		_, err = fetcher.Fetch(context.Background(), "https://acmecorp.com/missing", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("late"))
		}))
		defer server.Close()

		fetcher, err := zenrows.NewFetcher("test-key",
			zenrows.WithBaseURL(server.URL),
			zenrows.WithTimeout(10*time.Millisecond),
		)
		require.NoError(t, err)
		defer fetcher.Close()

		_, err = fetcher.Fetch(context.Background(), "https://acmecorp.com", false)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("late"))
		}))
		defer server.Close()

		fetcher, err := zenrows.NewFetcher("test-key", zenrows.WithBaseURL(server.URL))
		require.NoError(t, err)
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = fetcher.Fetch(ctx, "https://acmecorp.com", false)
		require.Error(t, err)
	})
}

// Compile-time verification that Fetcher implements miner.Fetcher
var _ miner.Fetcher = (*zenrows.Fetcher)(nil)
