package fs

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/fwojciec/bungo"
)

// Ensure GeoJSONWriter implements bungo.PlaceWriter at compile time.
var _ bungo.PlaceWriter = (*GeoJSONWriter)(nil)

// GeoJSONWriter writes place records as a GeoJSON FeatureCollection.
type GeoJSONWriter struct {
	path string

	// Now returns the generation timestamp. Defaults to time.Now.
	Now func() time.Time
}

// NewGeoJSONWriter creates a GeoJSONWriter that writes to path.
func NewGeoJSONWriter(path string) *GeoJSONWriter {
	return &GeoJSONWriter{path: path, Now: time.Now}
}

// FeatureCollection is a GeoJSON FeatureCollection with export metadata.
type FeatureCollection struct {
	Type     string     `json:"type"`
	Metadata Metadata   `json:"metadata"`
	Features []*Feature `json:"features"`
}

// Metadata summarizes an export.
type Metadata struct {
	Title            string `json:"title"`
	GeneratedAt      string `json:"generated_at"`
	TotalPlaces      int    `json:"total_places"`
	UniqueAuthors    int    `json:"unique_authors"`
	UniqueWorks      int    `json:"unique_works"`
	CoordinateSystem string `json:"coordinate_system"`
}

// Feature is a single GeoJSON point feature.
type Feature struct {
	Type       string     `json:"type"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

// Geometry is a GeoJSON Point. Coordinates are [lng, lat].
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Properties describe the mention behind a feature.
type Properties struct {
	PlaceID          string  `json:"place_id"`
	PlaceName        string  `json:"place_name"`
	AuthorName       string  `json:"author_name"`
	WorkTitle        string  `json:"work_title"`
	WorkID           string  `json:"work_id"`
	Context          string  `json:"context"`
	Confidence       float64 `json:"confidence"`
	ExtractionMethod string  `json:"extraction_method"`
	GeocodeSource    string  `json:"geocode_source,omitempty"`
	Title            string  `json:"title"`
	Subtitle         string  `json:"subtitle"`
	Category         string  `json:"category"`
	SourceURL        string  `json:"source_url,omitempty"`
}

// BuildFeatureCollection converts records into a FeatureCollection.
// Records without coordinates are skipped.
func BuildFeatureCollection(records []*bungo.PlaceRecord, generatedAt time.Time) *FeatureCollection {
	fc := &FeatureCollection{
		Type: "FeatureCollection",
		Metadata: Metadata{
			Title:            "文豪ゆかり地図",
			GeneratedAt:      generatedAt.UTC().Format(time.RFC3339),
			CoordinateSystem: "WGS84",
		},
		Features: []*Feature{},
	}

	authors := make(map[string]bool)
	works := make(map[string]bool)
	for _, r := range records {
		if !exportable(r) {
			continue
		}
		f := newFeature(r)
		fc.Features = append(fc.Features, f)
		authors[f.Properties.AuthorName] = true
		works[f.Properties.WorkID] = true
	}

	fc.Metadata.TotalPlaces = len(fc.Features)
	fc.Metadata.UniqueAuthors = len(authors)
	fc.Metadata.UniqueWorks = len(works)
	return fc
}

func newFeature(r *bungo.PlaceRecord) *Feature {
	m := r.Mention
	var title, author string
	if r.Work != nil {
		title, author = r.Work.Title, r.Work.Author
	}

	return &Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: [2]float64{*m.Lng, *m.Lat},
		},
		Properties: Properties{
			PlaceID:          m.ID,
			PlaceName:        m.PlaceName,
			AuthorName:       author,
			WorkTitle:        title,
			WorkID:           m.WorkID,
			Context:          mentionContext(m),
			Confidence:       m.Confidence,
			ExtractionMethod: m.ExtractionMethod,
			GeocodeSource:    m.GeocodeSource,
			Title:            m.PlaceName,
			Subtitle:         author + "『" + title + "』",
			Category:         Category(m.PlaceName),
			SourceURL:        m.SourceURL,
		},
	}
}

// mentionContext joins the context window with the sentence in bold.
func mentionContext(m *bungo.PlaceMention) string {
	s := m.BeforeText
	if m.Sentence != "" {
		s += "**" + m.Sentence + "**"
	}
	return s + m.AfterText
}

// WritePlaces writes records to the writer's path, replacing any previous export.
func (w *GeoJSONWriter) WritePlaces(ctx context.Context, records []*bungo.PlaceRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fc := BuildFeatureCollection(records, w.Now())
	return writeFile(w.path, func(out io.Writer) error {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(fc)
	})
}
