package digest

import (
	"context"
	"time"

	"github.com/fwojciec/skim"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithRetry calls fetcher.Fetch, retrying failed attempts after each
// of the given delays. Application errors with code EINVALID are permanent
// and returned without retrying. onRetry, if set, is called before each wait.
func fetchWithRetry(ctx context.Context, fetcher skim.Fetcher, url string, delays []time.Duration, onRetry func(attempt int, err error)) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		html, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if skim.ErrorCode(err) == skim.EINVALID || attempt == len(delays) {
			break
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if onRetry != nil {
			onRetry(attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
