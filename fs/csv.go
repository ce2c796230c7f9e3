package fs

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fwojciec/bungo"
)

// Ensure CSVWriter implements bungo.PlaceWriter at compile time.
var _ bungo.PlaceWriter = (*CSVWriter)(nil)

// csvHeader lists the exported columns in order.
var csvHeader = []string{
	"place_id", "place_name", "lat", "lng",
	"author_name", "work_title", "confidence", "extraction_method",
	"before_text", "sentence", "after_text", "category",
}

// CSVWriter writes place records as CSV with a header row.
type CSVWriter struct {
	path string
}

// NewCSVWriter creates a CSVWriter that writes to path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// WritePlaces writes records to the writer's path, replacing any previous export.
func (w *CSVWriter) WritePlaces(ctx context.Context, records []*bungo.PlaceRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeFile(w.path, func(out io.Writer) error {
		cw := csv.NewWriter(out)
		if err := cw.Write(csvHeader); err != nil {
			return err
		}
		for _, r := range records {
			if !exportable(r) {
				continue
			}
			if err := cw.Write(csvRow(r)); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

func csvRow(r *bungo.PlaceRecord) []string {
	m := r.Mention
	var title, author string
	if r.Work != nil {
		title, author = r.Work.Title, r.Work.Author
	}
	return []string{
		m.ID,
		m.PlaceName,
		strconv.FormatFloat(*m.Lat, 'f', -1, 64),
		strconv.FormatFloat(*m.Lng, 'f', -1, 64),
		author,
		title,
		strconv.FormatFloat(m.Confidence, 'f', -1, 64),
		m.ExtractionMethod,
		m.BeforeText,
		m.Sentence,
		m.AfterText,
		Category(m.PlaceName),
	}
}
