package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bungo"
)

// Ensure LoggingGeocoder implements bungo.Geocoder.
var _ bungo.Geocoder = (*LoggingGeocoder)(nil)

// LoggingGeocoder wraps a Geocoder with debug logging.
type LoggingGeocoder struct {
	next   bungo.Geocoder
	logger *slog.Logger
}

// NewLoggingGeocoder creates a new LoggingGeocoder.
func NewLoggingGeocoder(next bungo.Geocoder, logger *slog.Logger) *LoggingGeocoder {
	return &LoggingGeocoder{next: next, logger: logger}
}

// Geocode delegates to the wrapped geocoder and logs the match.
func (g *LoggingGeocoder) Geocode(ctx context.Context, placeName string) (result *bungo.GeocodeResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{"place", placeName}
		if result != nil {
			attrs = append(attrs, "source", result.Source, "lat", result.Lat, "lng", result.Lng)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		g.logger.Info("geocode", attrs...)
	}(time.Now())
	return g.next.Geocode(ctx, placeName)
}
