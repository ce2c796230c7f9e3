package bungo

import (
	"context"
	"time"
	"unicode/utf8"
)

// MaxContextRunes bounds each context field of a mention.
const MaxContextRunes = 500

// PlaceMention is one place name found in one work, with the sentence it
// occurs in and that sentence's neighbors.
type PlaceMention struct {
	ID               string  `json:"id"`
	WorkID           string  `json:"workId"`
	PlaceName        string  `json:"placeName"`
	BeforeText       string  `json:"beforeText"`
	Sentence         string  `json:"sentence"`
	AfterText        string  `json:"afterText"`
	SourceURL        string  `json:"sourceUrl,omitempty"`
	Confidence       float64 `json:"confidence"`
	ExtractionMethod string  `json:"extractionMethod"`

	// Filled by coordinate enrichment; nil until geocoded.
	Lat               *float64 `json:"lat,omitempty"`
	Lng               *float64 `json:"lng,omitempty"`
	GeocodeSource     string   `json:"geocodeSource,omitempty"`
	GeocodeConfidence float64  `json:"geocodeConfidence,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewPlaceMention builds a mention for placeName found in the window's
// sentence. Context fields are truncated to MaxContextRunes.
func NewPlaceMention(workID, placeName string, window ContextWindow, sourceURL string, confidence float64, method string) *PlaceMention {
	return &PlaceMention{
		WorkID:           workID,
		PlaceName:        placeName,
		BeforeText:       truncateRunes(window.Before, MaxContextRunes),
		Sentence:         truncateRunes(window.Sentence, MaxContextRunes),
		AfterText:        truncateRunes(window.After, MaxContextRunes),
		SourceURL:        sourceURL,
		Confidence:       confidence,
		ExtractionMethod: method,
	}
}

// Geocoded reports whether the mention has coordinates.
func (m *PlaceMention) Geocoded() bool {
	return m.Lat != nil && m.Lng != nil
}

// Validate returns an error if the mention contains invalid fields.
func (m *PlaceMention) Validate() error {
	if m.WorkID == "" {
		return Errorf(EINVALID, "mention work ID required")
	}
	if m.PlaceName == "" {
		return Errorf(EINVALID, "mention place name required")
	}
	if m.Confidence < 0 || m.Confidence > 1 {
		return Errorf(EINVALID, "mention confidence %v out of range", m.Confidence)
	}
	return nil
}

// Coordinates is the result of geocoding a mention's place name.
type Coordinates struct {
	Lat        float64
	Lng        float64
	Source     string
	Confidence float64
}

// MentionService represents a service for managing place mentions.
type MentionService interface {
	// InsertPlaceMention stores a mention and returns its ID. Re-inserting
	// the same (work, place name) pair updates the stored context and keeps
	// the existing ID.
	InsertPlaceMention(ctx context.Context, mention *PlaceMention) (string, error)

	// FindMentions retrieves mentions matching the filter.
	FindMentions(ctx context.Context, filter MentionFilter) ([]*PlaceMention, error)

	// ListMentionsMissingCoordinates returns mentions that have not been
	// geocoded yet. A limit of zero means no limit.
	ListMentionsMissingCoordinates(ctx context.Context, limit int) ([]*PlaceMention, error)

	// UpdateMentionCoordinates stores coordinates for a mention.
	// Returns ENOTFOUND if mention does not exist.
	UpdateMentionCoordinates(ctx context.Context, id string, coords Coordinates) error

	// DeleteMentionsByWork removes all mentions for a work.
	DeleteMentionsByWork(ctx context.Context, workID string) error

	// ReplaceMentions makes mentions the complete set stored for a work,
	// atomically. Place names missing from the set are removed; the others
	// keep their ID and coordinates. Every mention must belong to workID.
	ReplaceMentions(ctx context.Context, workID string, mentions []*PlaceMention) error
}

// MentionFilter represents a filter for FindMentions.
type MentionFilter struct {
	ID            *string  `json:"id"`
	WorkID        *string  `json:"workId"`
	PlaceName     *string  `json:"placeName"`
	PlaceQuery    *string  `json:"placeQuery"` // substring of the place name
	Geocoded      *bool    `json:"geocoded"`
	MinConfidence *float64 `json:"minConfidence"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Stats summarizes the stored collection.
type Stats struct {
	Works    int `json:"works"`
	Mentions int `json:"mentions"`
	Geocoded int `json:"geocoded"`
	Places   int `json:"places"`
}

// StatsService reports collection statistics.
type StatsService interface {
	Stats(ctx context.Context) (*Stats, error)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
