package discover_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Raavan18/b2b-data-miner/discover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	fastDelays := []time.Duration{time.Millisecond, time.Millisecond}

	t.Run("returns on first success without retrying", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "<html>ok</html>", nil
		}

		html, err := discover.FetchWithRetryDelays(context.Background(), "https://acmecorp.com", fetch, nil, fastDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until a fetch succeeds", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("connection reset")
			}
			return "<html>ok</html>", nil
		}

		html, err := discover.FetchWithRetryDelays(context.Background(), "https://acmecorp.com", fetch, nil, fastDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns the last error when every attempt fails", func(t *testing.T) {
		t.Parallel()

		calls := 0
		lastErr := errors.New("attempt 3")
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			if calls == 3 {
				return "", lastErr
			}
			return "", errors.New("earlier failure")
		}

		_, err := discover.FetchWithRetryDelays(context.Background(), "https://acmecorp.com", fetch, nil, fastDelays)

		assert.Equal(t, lastErr, err)
		assert.Equal(t, 3, calls, "1 initial attempt + 2 retries")
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(_ context.Context, _ string) (string, error) {
			cancel()
			return "", errors.New("boom")
		}

		_, err := discover.FetchWithRetryDelays(ctx, "https://acmecorp.com", fetch, nil, fastDelays)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("logs each retry attempt", func(t *testing.T) {
		t.Parallel()

		logged := 0
		logger := func(_ string, _ ...any) { logged++ }
		fetch := func(_ context.Context, _ string) (string, error) {
			return "", errors.New("boom")
		}

		_, err := discover.FetchWithRetryDelays(context.Background(), "https://acmecorp.com", fetch, logger, fastDelays)

		assert.Error(t, err)
		assert.Equal(t, 2, logged, "one log line per retry")
	})
}

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	delays := discover.DefaultRetryDelays()

	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}, delays)
}
