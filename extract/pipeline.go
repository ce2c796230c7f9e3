package extract

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/bungo"
)

// Ensure Pipeline implements bungo.PlaceExtractor at compile time.
var _ bungo.PlaceExtractor = (*Pipeline)(nil)

// Pipeline runs the enabled extractors over a work's text and merges their
// results, entity mentions first. A Pipeline must not be copied after first use.
type Pipeline struct {
	// NewEntityExtractor builds the entity extractor on first use; loading
	// a recognizer is expensive so it happens at most once per Pipeline.
	// Nil disables the entity path.
	NewEntityExtractor func() (bungo.PlaceExtractor, error)

	// Pattern is the pattern extractor. Nil disables the pattern path.
	Pattern bungo.PlaceExtractor

	once      sync.Once
	entity    bungo.PlaceExtractor
	entityErr error
}

// Extract returns the deduplicated mentions of both paths for one work.
func (p *Pipeline) Extract(ctx context.Context, workID, text, sourceURL string) ([]*bungo.PlaceMention, error) {
	if p.NewEntityExtractor == nil && p.Pattern == nil {
		return nil, bungo.Errorf(bungo.ECONFIG, "no extractor enabled")
	}

	var mentions []*bungo.PlaceMention

	if p.NewEntityExtractor != nil {
		entity, err := p.entityExtractor()
		if err != nil {
			return nil, err
		}
		found, err := entity.Extract(ctx, workID, text, sourceURL)
		if err != nil {
			return nil, fmt.Errorf("entity extraction: %w", err)
		}
		mentions = append(mentions, found...)
	}

	if p.Pattern != nil {
		found, err := p.Pattern.Extract(ctx, workID, text, sourceURL)
		if err != nil {
			return nil, fmt.Errorf("pattern extraction: %w", err)
		}
		mentions = append(mentions, found...)
	}

	return bungo.Deduplicate(mentions), nil
}

func (p *Pipeline) entityExtractor() (bungo.PlaceExtractor, error) {
	p.once.Do(func() {
		p.entity, p.entityErr = p.NewEntityExtractor()
		if p.entityErr != nil && bungo.ErrorCode(p.entityErr) != bungo.ECONFIG {
			p.entityErr = bungo.Errorf(bungo.ECONFIG, "entity extractor unavailable: %v", p.entityErr)
		}
	})
	return p.entity, p.entityErr
}
