package main

import (
	"fmt"

	"github.com/fwojciec/bungo"
)

// Run executes the places command.
func (c *PlacesCmd) Run(deps *Dependencies) error {
	var filter bungo.MentionFilter
	if c.Work != "" {
		filter.WorkID = &c.Work
	}
	if c.Place != "" {
		filter.PlaceQuery = &c.Place
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
		fmt.Fprintln(deps.Stdout, "No place mentions found. Use 'bungo extract' to find some.")
		return nil
	}

	for _, m := range mentions {
		coords := "-"
		if m.Geocoded() {
			coords = fmt.Sprintf("%.4f,%.4f", *m.Lat, *m.Lng)
		}
		fmt.Fprintf(deps.Stdout, "%s  %.2f  %s  %s\n", m.PlaceName, m.Confidence, m.ExtractionMethod, coords)
		if c.Context {
			fmt.Fprintf(deps.Stdout, "    %s\n", m.Sentence)
		}
	}
	return nil
}
