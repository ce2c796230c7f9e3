// Package fs writes place exports to the local filesystem.
package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/bungo"
)

// writeFile writes path through a temporary sibling that is renamed into
// place only after write succeeds, so readers never see a partial export.
func writeFile(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err := write(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// Place categories assigned by Category.
const (
	CategoryPrefecture = "prefecture"
	CategoryCity       = "city"
	CategoryNature     = "nature"
	CategoryLandmark   = "landmark"
	CategoryDistrict   = "district"
	CategoryOther      = "other"
)

var districts = map[string]bool{
	"本郷":   true,
	"上野":   true,
	"浅草":   true,
	"朱雀大路": true,
}

// Category classifies a place name for map styling. The first matching
// rule wins: administrative suffixes, then natural features, then landmarks.
func Category(placeName string) string {
	switch {
	case strings.ContainsAny(placeName, "県府道都"):
		return CategoryPrefecture
	case strings.ContainsAny(placeName, "市区町村"):
		return CategoryCity
	case strings.ContainsAny(placeName, "海湖川山島"):
		return CategoryNature
	case strings.Contains(placeName, "温泉"), strings.Contains(placeName, "神社"),
		strings.Contains(placeName, "寺"), strings.Contains(placeName, "駅"):
		return CategoryLandmark
	case districts[placeName]:
		return CategoryDistrict
	default:
		return CategoryOther
	}
}

// exportable reports whether r carries everything an export row needs.
func exportable(r *bungo.PlaceRecord) bool {
	return r != nil && r.Mention != nil && r.Mention.Geocoded()
}
