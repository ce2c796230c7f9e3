package mock

import (
	"context"

	"github.com/fwojciec/bungo"
)

var _ bungo.WorkService = (*WorkService)(nil)

// WorkService is a mock implementation of bungo.WorkService.
type WorkService struct {
	CreateWorkFn   func(ctx context.Context, work *bungo.Work) error
	FindWorkByIDFn func(ctx context.Context, id string) (*bungo.Work, error)
	FindWorksFn    func(ctx context.Context, filter bungo.WorkFilter) ([]*bungo.Work, error)
	UpdateWorkFn   func(ctx context.Context, id string, upd bungo.WorkUpdate) (*bungo.Work, error)
	DeleteWorkFn   func(ctx context.Context, id string) error
}

func (s *WorkService) CreateWork(ctx context.Context, work *bungo.Work) error {
	return s.CreateWorkFn(ctx, work)
}

func (s *WorkService) FindWorkByID(ctx context.Context, id string) (*bungo.Work, error) {
	return s.FindWorkByIDFn(ctx, id)
}

func (s *WorkService) FindWorks(ctx context.Context, filter bungo.WorkFilter) ([]*bungo.Work, error) {
	return s.FindWorksFn(ctx, filter)
}

func (s *WorkService) UpdateWork(ctx context.Context, id string, upd bungo.WorkUpdate) (*bungo.Work, error) {
	return s.UpdateWorkFn(ctx, id, upd)
}

func (s *WorkService) DeleteWork(ctx context.Context, id string) error {
	return s.DeleteWorkFn(ctx, id)
}
