package bungo

import "context"

// Fetcher retrieves pages over HTTP.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its body decoded to UTF-8.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (string, error)
}

// DocumentSource provides the normalized text of a work.
type DocumentSource interface {
	// FetchNormalizedText returns the work's text with ruby, annotations
	// and editorial metadata stripped and whitespace collapsed.
	FetchNormalizedText(ctx context.Context, ref string) (string, error)
}
