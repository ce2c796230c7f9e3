package geocode

import (
	"context"

	"github.com/fwojciec/bungo"
)

// Ensure Chain implements bungo.Geocoder at compile time.
var _ bungo.Geocoder = (Chain)(nil)

// Chain tries providers in order and returns the first match.
type Chain []bungo.Geocoder

// Geocode returns the first provider match. If every provider fails, the
// last error that was not ENOTFOUND is returned; if all providers simply
// had no match the result is ENOTFOUND.
func (c Chain) Geocode(ctx context.Context, placeName string) (*bungo.GeocodeResult, error) {
	var lastErr error
	for _, g := range c {
		result, err := g.Geocode(ctx, placeName)
		if err == nil {
			return result, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if bungo.ErrorCode(err) != bungo.ENOTFOUND {
			lastErr = err
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, bungo.Errorf(bungo.ENOTFOUND, "no provider matched %q", placeName)
}
