package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/bungo"
	"github.com/fwojciec/bungo/mock"
	bslog "github.com/fwojciec/bungo/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRecognizer(t *testing.T) {
	t.Parallel()

	inner := &mock.Recognizer{
		SentencesFn: func(context.Context, string) ([]string, error) {
			return []string{"東京に着いた。", "京都へ行った。"}, nil
		},
		EntitiesFn: func(context.Context, string) ([]bungo.Entity, error) {
			return nil, errors.New("model overloaded")
		},
	}

	t.Run("logs sentence count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		r := bslog.NewLoggingRecognizer(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		sentences, err := r.Sentences(context.Background(), "東京に着いた。京都へ行った。")

		require.NoError(t, err)
		assert.Len(t, sentences, 2)
		assert.Contains(t, buf.String(), "msg=segment")
		assert.Contains(t, buf.String(), "sentences=2")
	})

	t.Run("logs entity calls at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		r := bslog.NewLoggingRecognizer(inner, slog.New(handler))

		_, err := r.Entities(context.Background(), "東京に着いた。")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "err=\"model overloaded\"")
	})

	t.Run("omits entity calls at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		r := bslog.NewLoggingRecognizer(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		_, _ = r.Entities(context.Background(), "東京に着いた。")

		assert.Empty(t, buf.String())
	})
}

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.PlaceExtractor{
		ExtractFn: func(_ context.Context, workID, _, _ string) ([]*bungo.PlaceMention, error) {
			return []*bungo.PlaceMention{{WorkID: workID, PlaceName: "東京"}}, nil
		},
	}

	mentions, err := bslog.NewLoggingExtractor(inner, slog.New(slog.NewTextHandler(&buf, nil))).
		Extract(context.Background(), "w1", "東京に着いた。", "")

	require.NoError(t, err)
	assert.Len(t, mentions, 1)
	assert.Contains(t, buf.String(), "msg=extract")
	assert.Contains(t, buf.String(), "work=w1")
	assert.Contains(t, buf.String(), "mentions=1")
}
