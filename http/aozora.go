package http

import (
	"context"
	"strings"

	"github.com/fwojciec/bungo"
)

// Ensure AozoraSource implements bungo.DocumentSource at compile time.
var _ bungo.DocumentSource = (*AozoraSource)(nil)

// AozoraSource retrieves the text of an Aozora Bunko work from its XHTML
// edition or its plain-text file and normalizes it.
type AozoraSource struct {
	fetcher   bungo.Fetcher
	extractor bungo.TextExtractor
}

// NewAozoraSource creates an AozoraSource. extractor turns XHTML pages into
// text; plain-text files (.txt) skip it.
func NewAozoraSource(fetcher bungo.Fetcher, extractor bungo.TextExtractor) *AozoraSource {
	return &AozoraSource{fetcher: fetcher, extractor: extractor}
}

// FetchNormalizedText fetches the work at ref (a URL) and returns its
// normalized text. Returns ENOTFOUND if the page holds no text.
func (s *AozoraSource) FetchNormalizedText(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", bungo.Errorf(bungo.EINVALID, "work URL required")
	}

	body, err := s.fetcher.Fetch(ctx, ref)
	if err != nil {
		return "", err
	}

	raw := body
	if !strings.HasSuffix(strings.ToLower(ref), ".txt") {
		if raw, err = s.extractor.ExtractText(body); err != nil {
			return "", err
		}
	}

	text := bungo.NormalizeText(raw)
	if text == "" {
		return "", bungo.Errorf(bungo.ENOTFOUND, "no text found at %s", ref)
	}
	return text, nil
}
