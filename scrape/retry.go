package scrape

import (
	"context"
	"time"

	"github.com/fwojciec/jobsnap"
)

// OpenFunc is the signature of jobsnap.Browser.Open.
type OpenFunc func(ctx context.Context, url string) (jobsnap.Tab, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for page load retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// OpenWithRetryDelays calls open until it succeeds, waiting delays[i] before
// attempt i+2. Invalid requests are not retried. The logger, if provided, is
// called for each retry.
func OpenWithRetryDelays(ctx context.Context, url string, open OpenFunc, logger LogFunc, delays []time.Duration) (jobsnap.Tab, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		tab, err := open(ctx, url)
		if err == nil {
			return tab, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || jobsnap.ErrorCode(err) == jobsnap.EINVALID {
			break
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
