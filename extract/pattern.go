package extract

import (
	"context"

	"github.com/fwojciec/bungo"
)

// Ensure PatternExtractor implements bungo.PlaceExtractor at compile time.
var _ bungo.PlaceExtractor = (*PatternExtractor)(nil)

// PatternExtractor finds place names with lexical rules. It needs no
// language model and cannot fail to initialize.
type PatternExtractor struct {
	categories []PatternCategory
}

// NewPatternExtractor creates a PatternExtractor using DefaultCategories.
func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{categories: defaultCategories}
}

// Extract scans each sentence with every category in order and returns one
// mention per distinct place name. Within a sentence a match lying inside a
// span already claimed by an earlier category is dropped, so 松山 is not
// reported again inside 松山市. When several categories match the same
// surface string, the earliest category's mention is kept.
func (e *PatternExtractor) Extract(_ context.Context, workID, text, sourceURL string) ([]*bungo.PlaceMention, error) {
	if tooShort(text) {
		return []*bungo.PlaceMention{}, nil
	}

	sentences := bungo.SplitSentences(text)

	var mentions []*bungo.PlaceMention
	for i, sentence := range sentences {
		window := bungo.Window(sentences, i)
		var claimed []span
		for _, c := range e.categories {
			for _, loc := range c.Pattern.FindAllStringIndex(sentence, -1) {
				m := span{start: loc[0], end: loc[1]}
				if m.within(claimed) {
					continue
				}
				claimed = append(claimed, m)

				name := sentence[m.start:m.end]
				confidence := bungo.ScorePattern(name, sentence, c.Confidence)
				mentions = append(mentions, bungo.NewPlaceMention(workID, name, window, sourceURL, confidence, c.Method()))
			}
		}
	}

	return bungo.Deduplicate(mentions), nil
}

// span is a byte range [start, end) of a sentence.
type span struct {
	start, end int
}

// within reports whether s lies inside any of spans.
func (s span) within(spans []span) bool {
	for _, o := range spans {
		if s.start >= o.start && s.end <= o.end {
			return true
		}
	}
	return false
}
