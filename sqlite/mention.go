package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/bungo"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ bungo.MentionService = (*MentionService)(nil)

// MentionService implements bungo.MentionService using SQLite.
type MentionService struct {
	db *DB
}

// NewMentionService creates a new MentionService.
func NewMentionService(db *DB) *MentionService {
	return &MentionService{db: db}
}

const mentionColumns = `id, work_id, place_name, before_text, sentence, after_text, source_url,
	confidence, extraction_method, lat, lng, geocode_source, geocode_confidence, created_at`

// InsertPlaceMention stores a mention. A second insert for the same work and
// place name refreshes the stored context and keeps the first ID.
func (s *MentionService) InsertPlaceMention(ctx context.Context, m *bungo.PlaceMention) (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}
	return upsertMention(ctx, s.db, m)
}

// rowQuerier is satisfied by both *DB and *sql.Tx.
type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func upsertMention(ctx context.Context, q rowQuerier, m *bungo.PlaceMention) (string, error) {
	now := time.Now().UTC()

	var id string
	err := q.QueryRowContext(ctx, `
		INSERT INTO place_mentions (id, work_id, place_name, before_text, sentence, after_text, source_url,
			confidence, extraction_method, lat, lng, geocode_source, geocode_confidence, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (work_id, place_name) DO UPDATE SET
			before_text = excluded.before_text,
			sentence = excluded.sentence,
			after_text = excluded.after_text,
			source_url = excluded.source_url,
			confidence = excluded.confidence,
			extraction_method = excluded.extraction_method
		RETURNING id
	`, uuid.New().String(), m.WorkID, m.PlaceName, m.BeforeText, m.Sentence, m.AfterText, m.SourceURL,
		m.Confidence, m.ExtractionMethod, nullFloat(m.Lat), nullFloat(m.Lng), m.GeocodeSource,
		m.GeocodeConfidence, now.Format(time.RFC3339)).Scan(&id)
	if isForeignKeyViolation(err) {
		return "", bungo.Errorf(bungo.ENOTFOUND, "work not found")
	}
	if err != nil {
		return "", err
	}

	m.ID = id
	m.CreatedAt = now
	return id, nil
}

// ReplaceMentions upserts mentions and removes the work's other mentions in
// one transaction.
func (s *MentionService) ReplaceMentions(ctx context.Context, workID string, mentions []*bungo.PlaceMention) error {
	for _, m := range mentions {
		if err := m.Validate(); err != nil {
			return err
		}
		if m.WorkID != workID {
			return bungo.Errorf(bungo.EINVALID, "mention %q belongs to work %q, not %q", m.PlaceName, m.WorkID, workID)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := "DELETE FROM place_mentions WHERE work_id = ?"
	args := []any{workID}
	if len(mentions) > 0 {
		query += " AND id NOT IN (?" + strings.Repeat(", ?", len(mentions)-1) + ")"
	}
	for _, m := range mentions {
		id, err := upsertMention(ctx, tx, m)
		if err != nil {
			return fmt.Errorf("insert mention %q: %w", m.PlaceName, err)
		}
		args = append(args, id)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return tx.Commit()
}

// FindMentions retrieves mentions matching the filter in insertion order.
func (s *MentionService) FindMentions(ctx context.Context, filter bungo.MentionFilter) ([]*bungo.PlaceMention, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + mentionColumns + " FROM place_mentions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.WorkID != nil {
		query.WriteString(" AND work_id = ?")
		args = append(args, *filter.WorkID)
	}
	if filter.PlaceName != nil {
		query.WriteString(" AND place_name = ?")
		args = append(args, *filter.PlaceName)
	}
	if filter.PlaceQuery != nil {
		query.WriteString(` AND place_name LIKE ? ESCAPE '\'`)
		args = append(args, containsPattern(*filter.PlaceQuery))
	}
	if filter.Geocoded != nil {
		if *filter.Geocoded {
			query.WriteString(" AND lat IS NOT NULL AND lng IS NOT NULL")
		} else {
			query.WriteString(" AND (lat IS NULL OR lng IS NULL)")
		}
	}
	if filter.MinConfidence != nil {
		query.WriteString(" AND confidence >= ?")
		args = append(args, *filter.MinConfidence)
	}

	query.WriteString(" ORDER BY rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	return s.queryMentions(ctx, query.String(), args...)
}

// ListMentionsMissingCoordinates returns mentions without coordinates.
func (s *MentionService) ListMentionsMissingCoordinates(ctx context.Context, limit int) ([]*bungo.PlaceMention, error) {
	geocoded := false
	return s.FindMentions(ctx, bungo.MentionFilter{Geocoded: &geocoded, Limit: limit})
}

// UpdateMentionCoordinates stores coordinates for a mention.
func (s *MentionService) UpdateMentionCoordinates(ctx context.Context, id string, coords bungo.Coordinates) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE place_mentions
		SET lat = ?, lng = ?, geocode_source = ?, geocode_confidence = ?
		WHERE id = ?
	`, coords.Lat, coords.Lng, coords.Source, coords.Confidence, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return bungo.Errorf(bungo.ENOTFOUND, "mention not found")
	}
	return nil
}

// DeleteMentionsByWork removes all mentions for a work.
func (s *MentionService) DeleteMentionsByWork(ctx context.Context, workID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM place_mentions WHERE work_id = ?", workID)
	return err
}

func (s *MentionService) queryMentions(ctx context.Context, query string, args ...any) ([]*bungo.PlaceMention, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mentions []*bungo.PlaceMention
	for rows.Next() {
		var m bungo.PlaceMention
		var lat, lng sql.NullFloat64
		var createdAt string

		if err := rows.Scan(&m.ID, &m.WorkID, &m.PlaceName, &m.BeforeText, &m.Sentence, &m.AfterText,
			&m.SourceURL, &m.Confidence, &m.ExtractionMethod, &lat, &lng, &m.GeocodeSource,
			&m.GeocodeConfidence, &createdAt); err != nil {
			return nil, err
		}

		m.Lat = floatPtr(lat)
		m.Lng = floatPtr(lng)
		if m.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		mentions = append(mentions, &m)
	}
	return mentions, rows.Err()
}

// Compile-time interface verification.
var _ bungo.StatsService = (*StatsService)(nil)

// StatsService implements bungo.StatsService using SQLite.
type StatsService struct {
	db *DB
}

// NewStatsService creates a new StatsService.
func NewStatsService(db *DB) *StatsService {
	return &StatsService{db: db}
}

// Stats counts works, mentions, geocoded mentions and distinct place names.
func (s *StatsService) Stats(ctx context.Context) (*bungo.Stats, error) {
	var st bungo.Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM works),
			(SELECT COUNT(*) FROM place_mentions),
			(SELECT COUNT(*) FROM place_mentions WHERE lat IS NOT NULL AND lng IS NOT NULL),
			(SELECT COUNT(DISTINCT place_name) FROM place_mentions)
	`).Scan(&st.Works, &st.Mentions, &st.Geocoded, &st.Places)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
