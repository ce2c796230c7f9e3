package kagome_test

import (
	"context"
	"testing"

	"github.com/fwojciec/bungo"
	"github.com/fwojciec/bungo/kagome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecognizer(t *testing.T) *kagome.Recognizer {
	t.Helper()
	r, err := kagome.NewRecognizer()
	require.NoError(t, err)
	return r
}

func TestRecognizer_Sentences(t *testing.T) {
	t.Parallel()

	r := newRecognizer(t)

	t.Run("splits after terminators and keeps them", func(t *testing.T) {
		t.Parallel()

		sentences, err := r.Sentences(context.Background(), "東京へ行った。京都に住む！")
		require.NoError(t, err)
		assert.Equal(t, []string{"東京へ行った。", "京都に住む！"}, sentences)
	})

	t.Run("keeps trailing text without terminator", func(t *testing.T) {
		t.Parallel()

		sentences, err := r.Sentences(context.Background(), "東京へ行った。まだ続く")
		require.NoError(t, err)
		assert.Equal(t, []string{"東京へ行った。", "まだ続く"}, sentences)
	})

	t.Run("returns nothing for blank text", func(t *testing.T) {
		t.Parallel()

		sentences, err := r.Sentences(context.Background(), "   ")
		require.NoError(t, err)
		assert.Empty(t, sentences)
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := r.Sentences(ctx, "東京へ行った。")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRecognizer_Entities(t *testing.T) {
	t.Parallel()

	r := newRecognizer(t)

	t.Run("tags regional proper nouns as places", func(t *testing.T) {
		t.Parallel()

		entities, err := r.Entities(context.Background(), "東京へ行った。")
		require.NoError(t, err)
		require.NotEmpty(t, entities)
		assert.Equal(t, "東京", entities[0].Text)
		assert.True(t, entities[0].Label.IsPlace())
	})

	t.Run("joins regional suffix into a city", func(t *testing.T) {
		t.Parallel()

		entities, err := r.Entities(context.Background(), "汽車が松山市に着いた。")
		require.NoError(t, err)
		assert.Contains(t, entities, bungo.Entity{Text: "松山市", Label: bungo.LabelCity})
	})

	t.Run("ignores sentences without places", func(t *testing.T) {
		t.Parallel()

		entities, err := r.Entities(context.Background(), "猫が寝ている。")
		require.NoError(t, err)
		assert.Empty(t, entities)
	})
}
