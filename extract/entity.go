// Package extract turns the text of a work into place mentions.
// It provides the entity-based and pattern-based extractors, the pipeline
// that merges them, and a runner that processes stored works in batch.
package extract

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/bungo"
)

// Ensure EntityExtractor implements bungo.PlaceExtractor at compile time.
var _ bungo.PlaceExtractor = (*EntityExtractor)(nil)

// EntityExtractor finds place names with a named-entity recognizer.
type EntityExtractor struct {
	recognizer    bungo.Recognizer
	maxChunkBytes int
	logger        *slog.Logger
}

// Option configures an EntityExtractor.
type Option func(*EntityExtractor)

// WithMaxChunkBytes sets the largest chunk passed to the recognizer.
// Defaults to bungo.DefaultMaxChunkBytes; n <= 0 keeps the default.
func WithMaxChunkBytes(n int) Option {
	return func(e *EntityExtractor) {
		if n > 0 {
			e.maxChunkBytes = n
		}
	}
}

// WithLogger sets the logger that receives skipped chunks and sentences.
func WithLogger(logger *slog.Logger) Option {
	return func(e *EntityExtractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEntityExtractor creates an EntityExtractor backed by r.
func NewEntityExtractor(r bungo.Recognizer, opts ...Option) *EntityExtractor {
	e := &EntityExtractor{
		recognizer:    r,
		maxChunkBytes: bungo.DefaultMaxChunkBytes,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract segments text into sentences chunk by chunk, recognizes entities
// sentence by sentence, and returns one mention per distinct place name.
// Chunks and sentences the recognizer fails on are logged and skipped.
func (e *EntityExtractor) Extract(ctx context.Context, workID, text, sourceURL string) ([]*bungo.PlaceMention, error) {
	if tooShort(text) {
		return []*bungo.PlaceMention{}, nil
	}

	sentences, err := e.sentences(ctx, workID, text)
	if err != nil {
		return nil, err
	}

	var mentions []*bungo.PlaceMention
	for i, sentence := range sentences {
		entities, err := e.recognizer.Entities(ctx, sentence)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			e.logger.Warn("skip sentence", "work", workID, "sentence", i, "err", err)
			continue
		}

		window := bungo.Window(sentences, i)
		for _, ent := range entities {
			if !ent.Label.IsPlace() || ent.Text == "" {
				continue
			}
			confidence := bungo.ScoreEntity(ent.Text, sentence)
			mentions = append(mentions, bungo.NewPlaceMention(workID, ent.Text, window, sourceURL, confidence, bungo.MethodEntity))
		}
	}

	return bungo.Deduplicate(mentions), nil
}

// chunkResult is the outcome of segmenting one chunk.
type chunkResult struct {
	index     int
	sentences []string
	err       error
}

// sentences segments every chunk of text and folds the results into one
// ordered sentence list. Failed chunks contribute nothing.
func (e *EntityExtractor) sentences(ctx context.Context, workID, text string) ([]string, error) {
	var all []string
	index := 0
	for chunk := range bungo.ChunkText(text, e.maxChunkBytes) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sentences, err := e.recognizer.Sentences(ctx, chunk)
		all = e.fold(all, workID, chunkResult{index: index, sentences: sentences, err: err})
		index++
	}
	return all, nil
}

func (e *EntityExtractor) fold(acc []string, workID string, r chunkResult) []string {
	if r.err != nil {
		e.logger.Warn("skip chunk", "work", workID, "chunk", r.index, "err", r.err)
		return acc
	}
	for _, s := range r.sentences {
		if s = bungo.TrimSentence(s); s != "" {
			acc = append(acc, s)
		}
	}
	return acc
}

func tooShort(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) < bungo.MinTextRunes
}
