package scrape

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/fanza"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return BackoffDelays(3)
}

// BackoffDelays returns n delays doubling from one second.
func BackoffDelays(n int) []time.Duration {
	if n <= 0 {
		return nil
	}
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = time.Second << i
	}
	return delays
}

var _ fanza.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries failed fetches with backoff. Missing pages and
// invalid requests are returned immediately since retrying cannot fix them.
type RetryFetcher struct {
	next   fanza.Fetcher
	delays []time.Duration
}

// NewRetryFetcher wraps next. Each delay adds one retry; nil delays
// disable retrying.
func NewRetryFetcher(next fanza.Fetcher, delays []time.Duration) *RetryFetcher {
	return &RetryFetcher{next: next, delays: delays}
}

// Fetch attempts the fetch once plus once per configured delay.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= len(f.delays) || !retryable(err) {
			return "", lastErr
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}
}

// Close delegates to the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}

func retryable(err error) bool {
	switch fanza.ErrorCode(err) {
	case fanza.ENOTFOUND, fanza.EINVALID:
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
