package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/bungo"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ bungo.WorkService = (*WorkService)(nil)

// WorkService implements bungo.WorkService using SQLite.
type WorkService struct {
	db *DB
}

// NewWorkService creates a new WorkService.
func NewWorkService(db *DB) *WorkService {
	return &WorkService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

const workColumns = "id, title, author, source_url, content, content_hash, created_at, updated_at"

// CreateWork creates a new work.
func (s *WorkService) CreateWork(ctx context.Context, work *bungo.Work) error {
	if err := work.Validate(); err != nil {
		return err
	}

	id := uuid.New().String()
	now := time.Now().UTC()
	hash := hashContent(work.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO works (id, title, author, source_url, content, content_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, work.Title, work.Author, work.SourceURL, work.Content, hash,
		now.Format(time.RFC3339), now.Format(time.RFC3339))
	if isUniqueViolation(err) {
		return bungo.Errorf(bungo.ECONFLICT, "work %q by %s already exists", work.Title, work.Author)
	}
	if err != nil {
		return err
	}

	work.ID = id
	work.ContentHash = hash
	work.CreatedAt = now
	work.UpdatedAt = now
	return nil
}

// FindWorkByID retrieves a work by ID.
func (s *WorkService) FindWorkByID(ctx context.Context, id string) (*bungo.Work, error) {
	work, err := scanWork(s.db.QueryRowContext(ctx, "SELECT "+workColumns+" FROM works WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, bungo.Errorf(bungo.ENOTFOUND, "work not found")
	}
	return work, err
}

// FindWorks retrieves works matching the filter, oldest first.
func (s *WorkService) FindWorks(ctx context.Context, filter bungo.WorkFilter) ([]*bungo.Work, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + workColumns + " FROM works WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Title != nil {
		query.WriteString(" AND title = ?")
		args = append(args, *filter.Title)
	}
	if filter.Author != nil {
		query.WriteString(" AND author = ?")
		args = append(args, *filter.Author)
	}
	if filter.Query != nil {
		query.WriteString(` AND (title LIKE ? ESCAPE '\' OR author LIKE ? ESCAPE '\')`)
		pattern := containsPattern(*filter.Query)
		args = append(args, pattern, pattern)
	}

	query.WriteString(" ORDER BY created_at ASC, rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var works []*bungo.Work
	for rows.Next() {
		work, err := scanWork(rows)
		if err != nil {
			return nil, err
		}
		works = append(works, work)
	}
	return works, rows.Err()
}

// UpdateWork updates an existing work. Changing the content refreshes its hash.
func (s *WorkService) UpdateWork(ctx context.Context, id string, upd bungo.WorkUpdate) (*bungo.Work, error) {
	work, err := s.FindWorkByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.SourceURL != nil {
		work.SourceURL = *upd.SourceURL
	}
	if upd.Content != nil {
		work.Content = *upd.Content
		work.ContentHash = hashContent(work.Content)
	}

	if err := work.Validate(); err != nil {
		return nil, err
	}

	work.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE works
		SET source_url = ?, content = ?, content_hash = ?, updated_at = ?
		WHERE id = ?
	`, work.SourceURL, work.Content, work.ContentHash, work.UpdatedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	return work, nil
}

// DeleteWork permanently removes a work. Its mentions are removed by cascade.
func (s *WorkService) DeleteWork(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM works WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return bungo.Errorf(bungo.ENOTFOUND, "work not found")
	}
	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanWork(row scanner) (*bungo.Work, error) {
	var work bungo.Work
	var createdAt, updatedAt string

	if err := row.Scan(&work.ID, &work.Title, &work.Author, &work.SourceURL, &work.Content,
		&work.ContentHash, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if work.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if work.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &work, nil
}
