package bungo

import "context"

// Extraction method tags stored on mentions.
const (
	MethodEntity        = "entity_nlp"
	MethodPatternPrefix = "pattern_"
)

// MinTextRunes is the shortest text, after trimming, that extractors process.
// Shorter input yields no mentions.
const MinTextRunes = 2

// PlaceExtractor finds place mentions in the text of one work.
type PlaceExtractor interface {
	// Extract returns the deduplicated mentions found in text, in the order
	// they were found. Text too short to contain a place name yields an
	// empty result, not an error.
	Extract(ctx context.Context, workID, text, sourceURL string) ([]*PlaceMention, error)
}

// TextExtractor pulls the body text out of a work's HTML page.
type TextExtractor interface {
	// ExtractText returns the raw body text with ruby readings and
	// page chrome removed. The result is not yet normalized.
	ExtractText(html string) (string, error)
}
