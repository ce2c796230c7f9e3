package extract_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/bungo"
	"github.com/fwojciec/bungo/extract"
	"github.com/fwojciec/bungo/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keywordRecognizer splits on terminators and labels every listed keyword
// found in a sentence.
func keywordRecognizer(labels map[string]bungo.EntityLabel) *mock.Recognizer {
	return &mock.Recognizer{
		SentencesFn: func(_ context.Context, text string) ([]string, error) {
			return bungo.SplitSentences(text), nil
		},
		EntitiesFn: func(_ context.Context, sentence string) ([]bungo.Entity, error) {
			var entities []bungo.Entity
			for text, label := range labels {
				if strings.Contains(sentence, text) {
					entities = append(entities, bungo.Entity{Text: text, Label: label})
				}
			}
			return entities, nil
		},
	}
}

func TestEntityExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("builds mentions for place entities only", func(t *testing.T) {
		t.Parallel()

		r := keywordRecognizer(map[string]bungo.EntityLabel{
			"松山":  bungo.LabelCity,
			"山嵐":  "PERSON",
			"瀬戸内": bungo.LabelLOC,
		})
		e := extract.NewEntityExtractor(r)
		text := "東京を発った。松山に着いた。山嵐に会った。"

		mentions, err := e.Extract(context.Background(), "w1", text, "https://example.com/work.html")
		require.NoError(t, err)

		require.Len(t, mentions, 1)
		m := mentions[0]
		assert.Equal(t, "松山", m.PlaceName)
		assert.Equal(t, bungo.MethodEntity, m.ExtractionMethod)
		assert.Equal(t, "東京を発った", m.BeforeText)
		assert.Equal(t, "松山に着いた", m.Sentence)
		assert.Equal(t, "山嵐に会った", m.AfterText)
		assert.Equal(t, "https://example.com/work.html", m.SourceURL)
		assert.InDelta(t, 1.0, m.Confidence, 1e-9)
	})

	t.Run("skips chunks the recognizer fails on", func(t *testing.T) {
		t.Parallel()

		r := keywordRecognizer(map[string]bungo.EntityLabel{
			"京都": bungo.LabelGPE,
			"奈良": bungo.LabelGPE,
		})
		sentences := r.SentencesFn
		r.SentencesFn = func(ctx context.Context, text string) ([]string, error) {
			if strings.Contains(text, "壊") {
				return nil, errors.New("parse failure")
			}
			return sentences(ctx, text)
		}

		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))
		e := extract.NewEntityExtractor(r, extract.WithMaxChunkBytes(30), extract.WithLogger(logger))

		// Each sentence is 21 bytes, so every sentence is its own chunk.
		mentions, err := e.Extract(context.Background(), "w1", "京都へ行った。壊れた文です。奈良へ行った。", "")
		require.NoError(t, err)

		require.Len(t, mentions, 2)
		assert.Equal(t, "京都", mentions[0].PlaceName)
		assert.Equal(t, "奈良", mentions[1].PlaceName)
		assert.Equal(t, "京都へ行った", mentions[1].BeforeText)
		assert.Contains(t, logs.String(), "skip chunk")
		assert.Contains(t, logs.String(), "parse failure")
	})

	t.Run("skips sentences the recognizer fails on", func(t *testing.T) {
		t.Parallel()

		r := keywordRecognizer(map[string]bungo.EntityLabel{"鎌倉": bungo.LabelLOC})
		entities := r.EntitiesFn
		r.EntitiesFn = func(ctx context.Context, sentence string) ([]bungo.Entity, error) {
			if strings.HasPrefix(sentence, "壊") {
				return nil, errors.New("entity failure")
			}
			return entities(ctx, sentence)
		}

		var logs bytes.Buffer
		e := extract.NewEntityExtractor(r, extract.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

		mentions, err := e.Extract(context.Background(), "w1", "壊れた鎌倉。鎌倉の大仏を見た。", "")
		require.NoError(t, err)

		require.Len(t, mentions, 1)
		assert.Equal(t, "鎌倉の大仏を見た", mentions[0].Sentence)
		assert.Contains(t, logs.String(), "skip sentence")
	})

	t.Run("drops terminators kept by the segmenter", func(t *testing.T) {
		t.Parallel()

		r := keywordRecognizer(map[string]bungo.EntityLabel{"松山": bungo.LabelGPE})
		r.SentencesFn = func(_ context.Context, text string) ([]string, error) {
			return strings.SplitAfter(text, "。"), nil
		}
		e := extract.NewEntityExtractor(r)

		mentions, err := e.Extract(context.Background(), "w1", "東京を発った。松山に着いた！。 山嵐に会った。", "")
		require.NoError(t, err)

		require.Len(t, mentions, 1)
		assert.Equal(t, "東京を発った", mentions[0].BeforeText)
		assert.Equal(t, "松山に着いた", mentions[0].Sentence)
		assert.Equal(t, "山嵐に会った", mentions[0].AfterText)
	})

	t.Run("passes chunks within the byte limit", func(t *testing.T) {
		t.Parallel()

		var chunks []string
		r := keywordRecognizer(nil)
		r.SentencesFn = func(_ context.Context, text string) ([]string, error) {
			chunks = append(chunks, text)
			return bungo.SplitSentences(text), nil
		}
		e := extract.NewEntityExtractor(r, extract.WithMaxChunkBytes(64))

		_, err := e.Extract(context.Background(), "w1", strings.Repeat("汽車が松山市に着いた。", 30), "")
		require.NoError(t, err)

		require.Greater(t, len(chunks), 1)
		for _, c := range chunks {
			assert.LessOrEqual(t, len(c), 64)
		}
	})

	t.Run("deduplicates repeated places", func(t *testing.T) {
		t.Parallel()

		r := keywordRecognizer(map[string]bungo.EntityLabel{"東京": bungo.LabelGPE})
		e := extract.NewEntityExtractor(r)

		mentions, err := e.Extract(context.Background(), "w1", "東京に着いた。東京は広い。東京を去った。", "")
		require.NoError(t, err)

		require.Len(t, mentions, 1)
		assert.Equal(t, "東京に着いた", mentions[0].Sentence)
	})

	t.Run("returns empty result without calling recognizer for empty text", func(t *testing.T) {
		t.Parallel()

		e := extract.NewEntityExtractor(&mock.Recognizer{})

		mentions, err := e.Extract(context.Background(), "w1", "  ", "")
		require.NoError(t, err)
		assert.Empty(t, mentions)
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		e := extract.NewEntityExtractor(keywordRecognizer(nil))

		_, err := e.Extract(ctx, "w1", "東京に着いた。", "")
		require.ErrorIs(t, err, context.Canceled)
	})
}
