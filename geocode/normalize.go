// Package geocode resolves stored place mentions to coordinates. It wraps
// bungo.Geocoder providers with name normalization, caching, retries and
// provider fallback, and runs the enrichment of stored mentions.
package geocode

import (
	"context"
	"strings"

	"github.com/fwojciec/bungo"
)

// placeAliases maps names as they appear in literature to queries that
// geocoding services resolve unambiguously.
var placeAliases = map[string]string{
	"東京":    "東京都",
	"大阪":    "大阪府",
	"京都":    "京都府",
	"愛知":    "愛知県",
	"愛媛":    "愛媛県",
	"松山":    "松山市, 愛媛県",
	"道後温泉":  "道後温泉, 松山市, 愛媛県",
	"瀬戸内海":  "瀬戸内海, 日本",
	"本州":    "本州, 日本",
	"青森":    "青森県",
	"津軽":    "津軽地方, 青森県",
	"鎌倉":    "鎌倉市, 神奈川県",
	"神奈川":   "神奈川県",
	"文京区":   "文京区, 東京都",
	"本郷":    "本郷, 文京区, 東京都",
	"上野":    "上野, 台東区, 東京都",
	"浅草":    "浅草, 台東区, 東京都",
	"シラクス":  "Syracuse, Sicily, Italy",
	"シチリア島": "Sicily, Italy",
}

// NormalizePlaceName trims name and rewrites known literary names into
// provider-friendly queries. Unknown names are returned trimmed.
func NormalizePlaceName(name string) string {
	name = strings.TrimSpace(name)
	if alias, ok := placeAliases[name]; ok {
		return alias
	}
	return name
}

// Ensure Normalizer implements bungo.Geocoder at compile time.
var _ bungo.Geocoder = (*Normalizer)(nil)

// Normalizer geocodes the normalized form of a name and reports the result
// under the name it was asked for.
type Normalizer struct {
	next bungo.Geocoder
}

// NewNormalizer wraps next with name normalization.
func NewNormalizer(next bungo.Geocoder) *Normalizer {
	return &Normalizer{next: next}
}

func (n *Normalizer) Geocode(ctx context.Context, placeName string) (*bungo.GeocodeResult, error) {
	result, err := n.next.Geocode(ctx, NormalizePlaceName(placeName))
	if err != nil {
		return nil, err
	}
	out := *result
	out.PlaceName = placeName
	return &out, nil
}
