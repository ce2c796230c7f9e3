package bungo

import "context"

// PlaceRecord is a geocoded mention joined with the work it came from.
type PlaceRecord struct {
	Mention *PlaceMention
	Work    *Work
}

// PlaceWriter writes place records to an export destination.
type PlaceWriter interface {
	// WritePlaces replaces the destination's contents with records.
	// Records without coordinates are skipped.
	WritePlaces(ctx context.Context, records []*PlaceRecord) error
}
