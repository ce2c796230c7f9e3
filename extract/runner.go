package extract

import (
	"context"
	"fmt"

	"github.com/fwojciec/bungo"
)

// Runner extracts and stores mentions for every stored work matching a filter.
type Runner struct {
	Works     bungo.WorkService
	Mentions  bungo.MentionService
	Extractor bungo.PlaceExtractor

	// Replace makes the new mentions the complete set stored for a work.
	// Without it they are merged into what is already stored.
	Replace bool
}

// Result holds the outcome of a batch run.
type Result struct {
	Processed int
	Failed    int
	Mentions  int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type     ProgressType
	Total    int
	Work     *bungo.Work
	Mentions int
	Error    error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run processes works one at a time. A failing work is reported through
// progress and counted; it never stops the run. Run only returns an error
// if the works cannot be listed or ctx is canceled.
func (r *Runner) Run(ctx context.Context, filter bungo.WorkFilter, progress ProgressFunc) (*Result, error) {
	works, err := r.Works.FindWorks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}

	notify := func(e ProgressEvent) {
		if progress != nil {
			progress(e)
		}
	}

	notify(ProgressEvent{Type: ProgressStarted, Total: len(works)})

	result := &Result{}
	for _, work := range works {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		n, err := r.ExtractWork(ctx, work)
		if err != nil {
			result.Failed++
			notify(ProgressEvent{Type: ProgressFailed, Total: len(works), Work: work, Error: err})
			continue
		}
		result.Processed++
		result.Mentions += n
		notify(ProgressEvent{Type: ProgressCompleted, Total: len(works), Work: work, Mentions: n})
	}

	notify(ProgressEvent{Type: ProgressFinished, Total: len(works)})
	return result, nil
}

// ExtractWork extracts and stores the mentions of one work and returns how
// many were stored.
func (r *Runner) ExtractWork(ctx context.Context, work *bungo.Work) (int, error) {
	mentions, err := r.Extractor.Extract(ctx, work.ID, work.Content, work.SourceURL)
	if err != nil {
		return 0, err
	}

	if r.Replace {
		if err := r.Mentions.ReplaceMentions(ctx, work.ID, mentions); err != nil {
			return 0, fmt.Errorf("replace mentions: %w", err)
		}
		return len(mentions), nil
	}

	for _, m := range mentions {
		id, err := r.Mentions.InsertPlaceMention(ctx, m)
		if err != nil {
			return 0, fmt.Errorf("insert mention %q: %w", m.PlaceName, err)
		}
		m.ID = id
	}
	return len(mentions), nil
}
