package mock

import (
	"context"

	"github.com/fwojciec/bungo"
)

var _ bungo.MentionService = (*MentionService)(nil)

// MentionService is a mock implementation of bungo.MentionService.
type MentionService struct {
	InsertPlaceMentionFn             func(ctx context.Context, mention *bungo.PlaceMention) (string, error)
	FindMentionsFn                   func(ctx context.Context, filter bungo.MentionFilter) ([]*bungo.PlaceMention, error)
	ListMentionsMissingCoordinatesFn func(ctx context.Context, limit int) ([]*bungo.PlaceMention, error)
	UpdateMentionCoordinatesFn       func(ctx context.Context, id string, coords bungo.Coordinates) error
	DeleteMentionsByWorkFn           func(ctx context.Context, workID string) error
	ReplaceMentionsFn                func(ctx context.Context, workID string, mentions []*bungo.PlaceMention) error
}

func (s *MentionService) InsertPlaceMention(ctx context.Context, mention *bungo.PlaceMention) (string, error) {
	return s.InsertPlaceMentionFn(ctx, mention)
}

func (s *MentionService) FindMentions(ctx context.Context, filter bungo.MentionFilter) ([]*bungo.PlaceMention, error) {
	return s.FindMentionsFn(ctx, filter)
}

func (s *MentionService) ListMentionsMissingCoordinates(ctx context.Context, limit int) ([]*bungo.PlaceMention, error) {
	return s.ListMentionsMissingCoordinatesFn(ctx, limit)
}

func (s *MentionService) UpdateMentionCoordinates(ctx context.Context, id string, coords bungo.Coordinates) error {
	return s.UpdateMentionCoordinatesFn(ctx, id, coords)
}

func (s *MentionService) DeleteMentionsByWork(ctx context.Context, workID string) error {
	return s.DeleteMentionsByWorkFn(ctx, workID)
}

func (s *MentionService) ReplaceMentions(ctx context.Context, workID string, mentions []*bungo.PlaceMention) error {
	return s.ReplaceMentionsFn(ctx, workID, mentions)
}

var _ bungo.StatsService = (*StatsService)(nil)

// StatsService is a mock implementation of bungo.StatsService.
type StatsService struct {
	StatsFn func(ctx context.Context) (*bungo.Stats, error)
}

func (s *StatsService) Stats(ctx context.Context) (*bungo.Stats, error) {
	return s.StatsFn(ctx)
}
