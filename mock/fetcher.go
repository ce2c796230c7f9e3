package mock

import (
	"context"

	"github.com/fwojciec/bungo"
)

var _ bungo.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of bungo.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ bungo.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of bungo.DocumentSource.
type DocumentSource struct {
	FetchNormalizedTextFn func(ctx context.Context, ref string) (string, error)
}

func (s *DocumentSource) FetchNormalizedText(ctx context.Context, ref string) (string, error) {
	return s.FetchNormalizedTextFn(ctx, ref)
}
