package bungo

import "context"

// GeocodeResult is a coordinate match for a place name.
type GeocodeResult struct {
	PlaceName  string  `json:"placeName"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Address    string  `json:"address,omitempty"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// Coordinates converts the result into the form stored on mentions.
func (r *GeocodeResult) Coordinates() Coordinates {
	return Coordinates{
		Lat:        r.Lat,
		Lng:        r.Lng,
		Source:     r.Source,
		Confidence: r.Confidence,
	}
}

// Geocoder resolves place names to coordinates.
type Geocoder interface {
	// Geocode returns coordinates for placeName.
	// Returns ENOTFOUND if the provider has no match.
	Geocode(ctx context.Context, placeName string) (*GeocodeResult, error)
}
