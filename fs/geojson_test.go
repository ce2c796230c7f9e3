package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/bungo"
	"github.com/fwojciec/bungo/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFeatureCollection(t *testing.T) {
	t.Parallel()

	botchan := &bungo.Work{ID: "w1", Title: "坊っちゃん", Author: "夏目漱石"}
	melos := &bungo.Work{ID: "w2", Title: "走れメロス", Author: "太宰治"}
	generated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("builds point features with lng first", func(t *testing.T) {
		t.Parallel()

		fc := fs.BuildFeatureCollection([]*bungo.PlaceRecord{
			geocodedRecord("m1", "松山市", 33.8392, 132.7656, botchan),
		}, generated)

		require.Len(t, fc.Features, 1)
		f := fc.Features[0]
		assert.Equal(t, "Feature", f.Type)
		assert.Equal(t, "Point", f.Geometry.Type)
		assert.Equal(t, [2]float64{132.7656, 33.8392}, f.Geometry.Coordinates)
		assert.Equal(t, "松山市", f.Properties.PlaceName)
		assert.Equal(t, "夏目漱石『坊っちゃん』", f.Properties.Subtitle)
		assert.Equal(t, "前**松山市に着いた**後", f.Properties.Context)
		assert.Equal(t, fs.CategoryCity, f.Properties.Category)
		assert.Equal(t, "2026-01-02T03:04:05Z", fc.Metadata.GeneratedAt)
	})

	t.Run("skips records without coordinates", func(t *testing.T) {
		t.Parallel()

		fc := fs.BuildFeatureCollection([]*bungo.PlaceRecord{
			{Mention: &bungo.PlaceMention{ID: "m1", PlaceName: "シラクス"}, Work: melos},
			nil,
		}, generated)

		assert.Empty(t, fc.Features)
		assert.Equal(t, 0, fc.Metadata.TotalPlaces)
	})

	t.Run("counts unique authors and works", func(t *testing.T) {
		t.Parallel()

		fc := fs.BuildFeatureCollection([]*bungo.PlaceRecord{
			geocodedRecord("m1", "松山市", 33.8, 132.7, botchan),
			geocodedRecord("m2", "東京", 35.6, 139.7, botchan),
			geocodedRecord("m3", "シラクス", 37.0, 15.2, melos),
		}, generated)

		assert.Equal(t, 3, fc.Metadata.TotalPlaces)
		assert.Equal(t, 2, fc.Metadata.UniqueAuthors)
		assert.Equal(t, 2, fc.Metadata.UniqueWorks)
	})
}

func TestGeoJSONWriter_WritePlaces(t *testing.T) {
	t.Parallel()

	t.Run("writes unescaped GeoJSON", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "places.geojson")
		w := fs.NewGeoJSONWriter(path)

		work := &bungo.Work{ID: "w1", Title: "坊っちゃん", Author: "夏目漱石"}
		err := w.WritePlaces(context.Background(), []*bungo.PlaceRecord{
			geocodedRecord("m1", "松山市", 33.8392, 132.7656, work),
		})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "松山市")

		var fc fs.FeatureCollection
		require.NoError(t, json.Unmarshal(data, &fc))
		assert.Equal(t, "FeatureCollection", fc.Type)
		assert.Len(t, fc.Features, 1)

		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("writes empty feature array", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "places.geojson")
		require.NoError(t, fs.NewGeoJSONWriter(path).WritePlaces(context.Background(), nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"features": []`)
	})

	t.Run("returns error when context canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "places.geojson")
		err := fs.NewGeoJSONWriter(path).WritePlaces(ctx, nil)

		require.ErrorIs(t, err, context.Canceled)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}
