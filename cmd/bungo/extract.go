package main

import (
	"fmt"

	"github.com/fwojciec/bungo"
	"github.com/fwojciec/bungo/extract"
	bslog "github.com/fwojciec/bungo/slog"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	pipeline := &extract.Pipeline{}
	if c.Entity {
		pipeline.NewEntityExtractor = func() (bungo.PlaceExtractor, error) {
			r, err := deps.NewRecognizer()
			if err != nil {
				return nil, err
			}
			return extract.NewEntityExtractor(r,
				extract.WithMaxChunkBytes(c.ChunkBytes),
				extract.WithLogger(deps.Logger),
			), nil
		}
	}
	if c.Pattern {
		pipeline.Pattern = extract.NewPatternExtractor()
	}

	var extractor bungo.PlaceExtractor = pipeline
	if deps.Logger != nil {
		extractor = bslog.NewLoggingExtractor(pipeline, deps.Logger)
	}

	runner := &extract.Runner{
		Works:     deps.Works,
		Mentions:  deps.Mentions,
		Extractor: extractor,
		Replace:   c.Replace,
	}

	var filter bungo.WorkFilter
	if c.Work != "" {
		filter.ID = &c.Work
	}

	progress := func(event extract.ProgressEvent) {
		switch event.Type {
		case extract.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Extracting from %d works\n", event.Total)
		case extract.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  %s: %d mentions\n", event.Work.Title, event.Mentions)
		case extract.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Work.Title, bungo.ErrorMessage(event.Error))
		case extract.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	result, err := runner.Run(deps.Ctx, filter, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bungo.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Stored %d mentions from %d works", result.Mentions, result.Processed)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failed)", result.Failed)
	}
	fmt.Fprintln(deps.Stdout)

	if result.Processed == 0 && result.Failed > 0 {
		return bungo.Errorf(bungo.EINTERNAL, "extraction failed for every work")
	}
	return nil
}
