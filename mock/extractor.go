package mock

import (
	"context"

	"github.com/fwojciec/bungo"
)

var _ bungo.PlaceExtractor = (*PlaceExtractor)(nil)

// PlaceExtractor is a mock implementation of bungo.PlaceExtractor.
type PlaceExtractor struct {
	ExtractFn func(ctx context.Context, workID, text, sourceURL string) ([]*bungo.PlaceMention, error)
}

func (e *PlaceExtractor) Extract(ctx context.Context, workID, text, sourceURL string) ([]*bungo.PlaceMention, error) {
	return e.ExtractFn(ctx, workID, text, sourceURL)
}

var _ bungo.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of bungo.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}
