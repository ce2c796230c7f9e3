package bungo

import (
	"context"
	"time"
)

// Work represents a literary work whose text is searched for place names.
type Work struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	SourceURL   string    `json:"sourceUrl"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate returns an error if the work contains invalid fields.
func (w *Work) Validate() error {
	if w.Title == "" {
		return Errorf(EINVALID, "work title required")
	}
	if w.Author == "" {
		return Errorf(EINVALID, "work author required")
	}
	return nil
}

// WorkService represents a service for managing works.
type WorkService interface {
	// CreateWork creates a new work.
	// Returns ECONFLICT if a work with the same author and title exists.
	CreateWork(ctx context.Context, work *Work) error

	// FindWorkByID retrieves a work by ID.
	// Returns ENOTFOUND if work does not exist.
	FindWorkByID(ctx context.Context, id string) (*Work, error)

	// FindWorks retrieves works matching the filter.
	FindWorks(ctx context.Context, filter WorkFilter) ([]*Work, error)

	// UpdateWork updates an existing work.
	// Returns ENOTFOUND if work does not exist.
	UpdateWork(ctx context.Context, id string, upd WorkUpdate) (*Work, error)

	// DeleteWork permanently removes a work and all of its mentions.
	// Returns ENOTFOUND if work does not exist.
	DeleteWork(ctx context.Context, id string) error
}

// WorkFilter represents a filter for FindWorks.
type WorkFilter struct {
	ID     *string `json:"id"`
	Title  *string `json:"title"`
	Author *string `json:"author"`

	// Query matches works whose title or author contains it.
	Query *string `json:"query"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// WorkUpdate represents a set of fields to update on a work.
type WorkUpdate struct {
	SourceURL *string `json:"sourceUrl"`
	Content   *string `json:"content"`
}
