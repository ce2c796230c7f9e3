package mock

import (
	"context"

	"github.com/fwojciec/bungo"
)

var _ bungo.Recognizer = (*Recognizer)(nil)

// Recognizer is a mock implementation of bungo.Recognizer.
type Recognizer struct {
	SentencesFn func(ctx context.Context, text string) ([]string, error)
	EntitiesFn  func(ctx context.Context, sentence string) ([]bungo.Entity, error)
}

func (r *Recognizer) Sentences(ctx context.Context, text string) ([]string, error) {
	return r.SentencesFn(ctx, text)
}

func (r *Recognizer) Entities(ctx context.Context, sentence string) ([]bungo.Entity, error) {
	return r.EntitiesFn(ctx, sentence)
}
