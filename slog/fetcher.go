package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bungo"
)

// Ensure LoggingFetcher implements bungo.Fetcher.
var _ bungo.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   bungo.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next bungo.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (body string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Ensure LoggingSource implements bungo.DocumentSource.
var _ bungo.DocumentSource = (*LoggingSource)(nil)

// LoggingSource wraps a DocumentSource with debug logging.
type LoggingSource struct {
	next   bungo.DocumentSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next bungo.DocumentSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// FetchNormalizedText delegates to the wrapped source and logs the text size.
func (s *LoggingSource) FetchNormalizedText(ctx context.Context, ref string) (text string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("fetch text",
			"ref", ref,
			"chars", len([]rune(text)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchNormalizedText(ctx, ref)
}
