package mock

import (
	"context"

	"github.com/fwojciec/bungo"
)

var _ bungo.Geocoder = (*Geocoder)(nil)

// Geocoder is a mock implementation of bungo.Geocoder.
type Geocoder struct {
	GeocodeFn func(ctx context.Context, placeName string) (*bungo.GeocodeResult, error)
}

func (g *Geocoder) Geocode(ctx context.Context, placeName string) (*bungo.GeocodeResult, error) {
	return g.GeocodeFn(ctx, placeName)
}
