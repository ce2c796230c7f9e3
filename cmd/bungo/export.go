package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/bungo"
	"github.com/fwojciec/bungo/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	geocoded := true
	filter := bungo.MentionFilter{Geocoded: &geocoded}
	if c.Work != "" {
		filter.WorkID = &c.Work
	}
	if c.MinConfidence > 0 {
		filter.MinConfidence = &c.MinConfidence
	}

	mentions, err := deps.Mentions.FindMentions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bungo.ErrorMessage(err))
		return err
	}

	if len(mentions) == 0 {
		fmt.Fprintln(deps.Stdout, "No geocoded mentions. Run 'bungo geocode' first.")
		return nil
	}

	works, err := deps.Works.FindWorks(deps.Ctx, bungo.WorkFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bungo.ErrorMessage(err))
		return err
	}
	byID := make(map[string]*bungo.Work, len(works))
	for _, w := range works {
		byID[w.ID] = w
	}

	records := make([]*bungo.PlaceRecord, 0, len(mentions))
	for _, m := range mentions {
		records = append(records, &bungo.PlaceRecord{Mention: m, Work: byID[m.WorkID]})
	}

	var writer bungo.PlaceWriter
	switch c.Format {
	case "csv":
		writer = fs.NewCSVWriter(c.Output)
	default:
		writer = fs.NewGeoJSONWriter(c.Output)
	}

	if err := writer.WritePlaces(deps.Ctx, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bungo.ErrorMessage(err))
		return err
	}

	info, err := os.Stat(c.Output)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Exported %d places to %s (%s)\n", len(records), c.Output, fs.FormatBytes(info.Size()))
	return nil
}
