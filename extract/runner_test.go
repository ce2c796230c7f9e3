package extract_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/bungo"
	"github.com/fwojciec/bungo/extract"
	"github.com/fwojciec/bungo/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	works := []*bungo.Work{
		{ID: "w1", Title: "坊っちゃん", Author: "夏目漱石", Content: "汽車が松山市に着いた。"},
		{ID: "w2", Title: "壊れた作品", Author: "誰か", Content: "壊"},
		{ID: "w3", Title: "走れメロス", Author: "太宰治", Content: "メロスはシラクスの市にやって来た。"},
	}

	newRunner := func(inserted *[]*bungo.PlaceMention) *extract.Runner {
		return &extract.Runner{
			Works: &mock.WorkService{
				FindWorksFn: func(context.Context, bungo.WorkFilter) ([]*bungo.Work, error) {
					return works, nil
				},
			},
			Mentions: &mock.MentionService{
				InsertPlaceMentionFn: func(_ context.Context, m *bungo.PlaceMention) (string, error) {
					*inserted = append(*inserted, m)
					return fmt.Sprintf("m%d", len(*inserted)), nil
				},
			},
			Extractor: &mock.PlaceExtractor{
				ExtractFn: func(_ context.Context, workID, text, _ string) ([]*bungo.PlaceMention, error) {
					if text == "壊" {
						return nil, errors.New("extraction failed")
					}
					return []*bungo.PlaceMention{{WorkID: workID, PlaceName: "P-" + workID, Confidence: 0.8}}, nil
				},
			},
		}
	}

	t.Run("isolates failing works", func(t *testing.T) {
		t.Parallel()

		var inserted []*bungo.PlaceMention
		var events []extract.ProgressEvent
		r := newRunner(&inserted)

		result, err := r.Run(context.Background(), bungo.WorkFilter{}, func(e extract.ProgressEvent) {
			events = append(events, e)
		})
		require.NoError(t, err)

		assert.Equal(t, 2, result.Processed)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 2, result.Mentions)

		require.Len(t, inserted, 2)
		assert.Equal(t, "m1", inserted[0].ID)
		assert.Equal(t, "w3", inserted[1].WorkID)

		require.Len(t, events, 5)
		assert.Equal(t, extract.ProgressStarted, events[0].Type)
		assert.Equal(t, 3, events[0].Total)
		assert.Equal(t, extract.ProgressCompleted, events[1].Type)
		assert.Equal(t, extract.ProgressFailed, events[2].Type)
		assert.Equal(t, "w2", events[2].Work.ID)
		assert.EqualError(t, events[2].Error, "extraction failed")
		assert.Equal(t, extract.ProgressFinished, events[4].Type)
	})

	t.Run("accepts nil progress callback", func(t *testing.T) {
		t.Parallel()

		var inserted []*bungo.PlaceMention
		result, err := newRunner(&inserted).Run(context.Background(), bungo.WorkFilter{}, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Processed)
	})

	t.Run("returns error when works cannot be listed", func(t *testing.T) {
		t.Parallel()

		r := &extract.Runner{
			Works: &mock.WorkService{
				FindWorksFn: func(context.Context, bungo.WorkFilter) ([]*bungo.Work, error) {
					return nil, errors.New("db closed")
				},
			},
		}

		_, err := r.Run(context.Background(), bungo.WorkFilter{}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db closed")
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		var inserted []*bungo.PlaceMention
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := newRunner(&inserted).Run(ctx, bungo.WorkFilter{}, nil)
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, result.Processed)
		assert.Empty(t, inserted)
	})
}

func TestRunner_ExtractWork(t *testing.T) {
	t.Parallel()

	work := &bungo.Work{ID: "w1", Content: "京都に着いた。"}
	extractor := &mock.PlaceExtractor{
		ExtractFn: func(_ context.Context, workID, _, _ string) ([]*bungo.PlaceMention, error) {
			return []*bungo.PlaceMention{{WorkID: workID, PlaceName: "京都"}}, nil
		},
	}

	t.Run("replaces stored mentions in one call when replacing", func(t *testing.T) {
		t.Parallel()

		var replaced []string
		r := &extract.Runner{
			Extractor: extractor,
			Replace:   true,
			Mentions: &mock.MentionService{
				ReplaceMentionsFn: func(_ context.Context, workID string, mentions []*bungo.PlaceMention) error {
					assert.Equal(t, "w1", workID)
					for _, m := range mentions {
						replaced = append(replaced, m.PlaceName)
					}
					return nil
				},
			},
		}

		n, err := r.ExtractWork(context.Background(), work)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, []string{"京都"}, replaced)
	})

	t.Run("returns replace error", func(t *testing.T) {
		t.Parallel()

		r := &extract.Runner{
			Extractor: extractor,
			Replace:   true,
			Mentions: &mock.MentionService{
				ReplaceMentionsFn: func(context.Context, string, []*bungo.PlaceMention) error {
					return bungo.Errorf(bungo.ENOTFOUND, "work not found")
				},
			},
		}

		_, err := r.ExtractWork(context.Background(), work)
		assert.Equal(t, bungo.ENOTFOUND, bungo.ErrorCode(err))
	})

	t.Run("keeps existing mentions by default", func(t *testing.T) {
		t.Parallel()

		r := &extract.Runner{
			Extractor: extractor,
			Mentions: &mock.MentionService{
				InsertPlaceMentionFn: func(context.Context, *bungo.PlaceMention) (string, error) {
					return "m1", nil
				},
			},
		}

		n, err := r.ExtractWork(context.Background(), work)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("returns insert error", func(t *testing.T) {
		t.Parallel()

		r := &extract.Runner{
			Extractor: extractor,
			Mentions: &mock.MentionService{
				InsertPlaceMentionFn: func(context.Context, *bungo.PlaceMention) (string, error) {
					return "", bungo.Errorf(bungo.EINVALID, "bad mention")
				},
			},
		}

		_, err := r.ExtractWork(context.Background(), work)
		require.Error(t, err)
		assert.Equal(t, bungo.EINVALID, bungo.ErrorCode(err))
	})
}
