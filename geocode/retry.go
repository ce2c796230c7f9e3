package geocode

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bungo"
)

// DefaultRetryDelays returns the backoff delays for geocoding retries: 1s, 2s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// Ensure Retry implements bungo.Geocoder at compile time.
var _ bungo.Geocoder = (*Retry)(nil)

// Retry re-runs failed lookups with backoff. ENOTFOUND is an answer, not a
// failure, and is never retried.
type Retry struct {
	next   bungo.Geocoder
	delays []time.Duration
	logger *slog.Logger
}

// NewRetry wraps next. A nil delays slice uses DefaultRetryDelays.
func NewRetry(next bungo.Geocoder, delays []time.Duration, logger *slog.Logger) *Retry {
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Retry{next: next, delays: delays, logger: logger}
}

func (r *Retry) Geocode(ctx context.Context, placeName string) (*bungo.GeocodeResult, error) {
	maxAttempts := len(r.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := r.next.Geocode(ctx, placeName)
		if err == nil || bungo.ErrorCode(err) == bungo.ENOTFOUND {
			return result, err
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		r.logger.Warn("retry geocode", "place", placeName, "attempt", attempt+2, "err", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.delays[attempt]):
		}
	}

	return nil, lastErr
}
