package http_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/bungo"
	bungohttp "github.com/fwojciec/bungo/http"
	"github.com/fwojciec/bungo/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAozoraSource_FetchNormalizedText(t *testing.T) {
	t.Parallel()

	t.Run("extracts and normalizes XHTML editions", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				assert.Equal(t, "https://www.aozora.gr.jp/cards/000035/files/1567_14913.html", url)
				return "<html>...</html>", nil
			},
		}
		extractor := &mock.TextExtractor{
			ExtractTextFn: func(html string) (string, error) {
				assert.Equal(t, "<html>...</html>", html)
				return "メロスは激怒《げきど》した。\n\n\n\nシラクスの市にやって来た。", nil
			},
		}
		source := bungohttp.NewAozoraSource(fetcher, extractor)

		text, err := source.FetchNormalizedText(context.Background(), "https://www.aozora.gr.jp/cards/000035/files/1567_14913.html")
		require.NoError(t, err)
		assert.Equal(t, "メロスは激怒した。\n\nシラクスの市にやって来た。", text)
	})

	t.Run("normalizes plain text files without extraction", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "汽車が｜松山《まつやま》市に着いた。", nil
			},
		}
		source := bungohttp.NewAozoraSource(fetcher, &mock.TextExtractor{})

		text, err := source.FetchNormalizedText(context.Background(), "https://example.com/botchan.TXT")
		require.NoError(t, err)
		assert.Equal(t, "汽車が松山市に着いた。", text)
	})

	t.Run("returns EINVALID for empty ref", func(t *testing.T) {
		t.Parallel()

		source := bungohttp.NewAozoraSource(&mock.Fetcher{}, &mock.TextExtractor{})

		_, err := source.FetchNormalizedText(context.Background(), "")
		assert.Equal(t, bungo.EINVALID, bungo.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for pages without text", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
		}
		extractor := &mock.TextExtractor{
			ExtractTextFn: func(string) (string, error) { return "  \n ", nil },
		}

		_, err := bungohttp.NewAozoraSource(fetcher, extractor).FetchNormalizedText(context.Background(), "https://example.com/a.html")
		assert.Equal(t, bungo.ENOTFOUND, bungo.ErrorCode(err))
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return "", errors.New("connection reset") },
		}

		_, err := bungohttp.NewAozoraSource(fetcher, &mock.TextExtractor{}).FetchNormalizedText(context.Background(), "https://example.com/a.html")
		assert.EqualError(t, err, "connection reset")
	})
}
