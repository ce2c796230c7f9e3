package bungo_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/bungo"
	"github.com/stretchr/testify/assert"
)

func TestNewPlaceMention(t *testing.T) {
	t.Parallel()

	t.Run("truncates context to the rune limit", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("東", 600)
		window := bungo.ContextWindow{Before: long, Sentence: long, After: long}

		m := bungo.NewPlaceMention("w1", "東京", window, "", 0.9, bungo.MethodEntity)

		assert.Equal(t, bungo.MaxContextRunes, utf8.RuneCountInString(m.BeforeText))
		assert.Equal(t, bungo.MaxContextRunes, utf8.RuneCountInString(m.Sentence))
		assert.Equal(t, bungo.MaxContextRunes, utf8.RuneCountInString(m.AfterText))
	})

	t.Run("keeps short context unchanged", func(t *testing.T) {
		t.Parallel()

		window := bungo.ContextWindow{Before: "前", Sentence: "東京へ", After: "後"}

		m := bungo.NewPlaceMention("w1", "東京", window, "https://www.aozora.gr.jp/x.html", 0.9, bungo.MethodEntity)

		assert.Equal(t, "前", m.BeforeText)
		assert.Equal(t, "東京へ", m.Sentence)
		assert.Equal(t, "後", m.AfterText)
		assert.Equal(t, "https://www.aozora.gr.jp/x.html", m.SourceURL)
		assert.False(t, m.Geocoded())
	})
}

func TestPlaceMention_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires work ID", func(t *testing.T) {
		t.Parallel()

		err := (&bungo.PlaceMention{PlaceName: "東京"}).Validate()

		assert.Equal(t, bungo.EINVALID, bungo.ErrorCode(err))
	})

	t.Run("requires place name", func(t *testing.T) {
		t.Parallel()

		err := (&bungo.PlaceMention{WorkID: "w1"}).Validate()

		assert.Equal(t, bungo.EINVALID, bungo.ErrorCode(err))
	})

	t.Run("rejects confidence out of range", func(t *testing.T) {
		t.Parallel()

		err := (&bungo.PlaceMention{WorkID: "w1", PlaceName: "東京", Confidence: 1.5}).Validate()

		assert.Equal(t, bungo.EINVALID, bungo.ErrorCode(err))
	})

	t.Run("accepts valid mention", func(t *testing.T) {
		t.Parallel()

		err := (&bungo.PlaceMention{WorkID: "w1", PlaceName: "東京", Confidence: 0.5}).Validate()

		assert.NoError(t, err)
	})
}

func TestWork_Validate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bungo.EINVALID, bungo.ErrorCode((&bungo.Work{Author: "夏目漱石"}).Validate()))
	assert.Equal(t, bungo.EINVALID, bungo.ErrorCode((&bungo.Work{Title: "坊っちゃん"}).Validate()))
	assert.NoError(t, (&bungo.Work{Title: "坊っちゃん", Author: "夏目漱石"}).Validate())
}
