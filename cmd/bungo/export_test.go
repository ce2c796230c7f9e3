package main_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/bungo"
	main "github.com/fwojciec/bungo/cmd/bungo"
	"github.com/fwojciec/bungo/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd(t *testing.T) {
	t.Parallel()

	lat, lng := 33.8392, 132.7656
	geocodedMentions := func(_ context.Context, f bungo.MentionFilter) ([]*bungo.PlaceMention, error) {
		if f.Geocoded == nil || !*f.Geocoded {
			return nil, bungo.Errorf(bungo.EINVALID, "expected geocoded filter")
		}
		return []*bungo.PlaceMention{
			{ID: "m1", WorkID: "w1", PlaceName: "松山市", Confidence: 0.9, Lat: &lat, Lng: &lng},
		}, nil
	}
	works := &mock.WorkService{
		FindWorksFn: func(context.Context, bungo.WorkFilter) ([]*bungo.Work, error) {
			return []*bungo.Work{{ID: "w1", Title: "坊っちゃん", Author: "夏目漱石"}}, nil
		},
	}

	t.Run("writes geojson", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "places.geojson")
		deps, stdout, _ := newDeps()
		deps.Mentions = &mock.MentionService{FindMentionsFn: geocodedMentions}
		deps.Works = works

		err := (&main.ExportCmd{Output: path, Format: "geojson"}).Run(deps)

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "夏目漱石『坊っちゃん』")
		assert.Contains(t, stdout.String(), "Exported 1 places to "+path)
	})

	t.Run("writes csv", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "places.csv")
		deps, _, _ := newDeps()
		deps.Mentions = &mock.MentionService{FindMentionsFn: geocodedMentions}
		deps.Works = works

		err := (&main.ExportCmd{Output: path, Format: "csv"}).Run(deps)

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "m1,松山市,33.8392,132.7656,夏目漱石,坊っちゃん")
	})

	t.Run("skips writing when nothing is geocoded", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "places.geojson")
		deps, stdout, _ := newDeps()
		deps.Mentions = &mock.MentionService{
			FindMentionsFn: func(context.Context, bungo.MentionFilter) ([]*bungo.PlaceMention, error) {
				return nil, nil
			},
		}

		err := (&main.ExportCmd{Output: path}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "bungo geocode")
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}
