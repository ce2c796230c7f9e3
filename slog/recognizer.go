package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bungo"
)

// Ensure LoggingRecognizer implements bungo.Recognizer.
var _ bungo.Recognizer = (*LoggingRecognizer)(nil)

// LoggingRecognizer wraps a Recognizer with debug logging. Entity calls are
// logged at debug level since there is one per sentence.
type LoggingRecognizer struct {
	next   bungo.Recognizer
	logger *slog.Logger
}

// NewLoggingRecognizer creates a new LoggingRecognizer.
func NewLoggingRecognizer(next bungo.Recognizer, logger *slog.Logger) *LoggingRecognizer {
	return &LoggingRecognizer{next: next, logger: logger}
}

// Sentences delegates to the wrapped recognizer and logs the sentence count.
func (r *LoggingRecognizer) Sentences(ctx context.Context, text string) (sentences []string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("segment",
			"bytes", len(text),
			"sentences", len(sentences),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Sentences(ctx, text)
}

// Entities delegates to the wrapped recognizer and logs the entity count.
func (r *LoggingRecognizer) Entities(ctx context.Context, sentence string) (entities []bungo.Entity, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("recognize",
			"sentence", sentence,
			"entities", len(entities),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Entities(ctx, sentence)
}

// Ensure LoggingExtractor implements bungo.PlaceExtractor.
var _ bungo.PlaceExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a PlaceExtractor with debug logging.
type LoggingExtractor struct {
	next   bungo.PlaceExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next bungo.PlaceExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the mention count.
func (e *LoggingExtractor) Extract(ctx context.Context, workID, text, sourceURL string) (mentions []*bungo.PlaceMention, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"work", workID,
			"bytes", len(text),
			"mentions", len(mentions),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, workID, text, sourceURL)
}
