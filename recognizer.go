package bungo

import "context"

// EntityLabel is the category a recognizer assigns to a span.
type EntityLabel string

// Place-like entity labels. Recognizers may emit other labels; only these
// produce mentions.
const (
	LabelProvince EntityLabel = "Province"
	LabelCity     EntityLabel = "City"
	LabelCounty   EntityLabel = "County"
	LabelGPE      EntityLabel = "GPE"
	LabelLOC      EntityLabel = "LOC"
)

// IsPlace reports whether the label denotes a place.
func (l EntityLabel) IsPlace() bool {
	switch l {
	case LabelProvince, LabelCity, LabelCounty, LabelGPE, LabelLOC:
		return true
	}
	return false
}

// Entity is a labeled span found by a Recognizer.
type Entity struct {
	Text  string      `json:"text"`
	Label EntityLabel `json:"label"`
}

// Recognizer is a natural-language entity recognizer.
// Implementations are constructed once and reused across works.
type Recognizer interface {
	// Sentences segments text into sentences in source order.
	// Input is at most one chunk (see ChunkText).
	Sentences(ctx context.Context, text string) ([]string, error)

	// Entities returns the entities recognized in a single sentence.
	Entities(ctx context.Context, sentence string) ([]Entity, error)
}
