package main

import (
	"fmt"

	"github.com/fwojciec/bungo"
	"github.com/fwojciec/bungo/geocode"
)

// Run executes the geocode command.
func (c *GeocodeCmd) Run(deps *Dependencies) error {
	enricher := &geocode.Enricher{
		Mentions:      deps.Mentions,
		Geocoder:      deps.Geocoder,
		Concurrency:   c.Concurrency,
		MinConfidence: c.MinConfidence,
	}

	onEvent := func(e geocode.Event) {
		switch {
		case e.Error != nil && bungo.ErrorCode(e.Error) == bungo.ENOTFOUND:
			fmt.Fprintf(deps.Stdout, "  %s: not found\n", e.PlaceName)
		case e.Error != nil:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", e.PlaceName, bungo.ErrorMessage(e.Error))
		case e.Result != nil:
			fmt.Fprintf(deps.Stdout, "  %s: %.4f, %.4f (%s, %d mentions)\n",
				e.PlaceName, e.Result.Lat, e.Result.Lng, e.Result.Source, e.Mentions)
		}
	}

	result, err := enricher.Enrich(deps.Ctx, c.Limit, onEvent)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bungo.ErrorMessage(err))
		return err
	}

	if result.Places == 0 {
		fmt.Fprintln(deps.Stdout, "No mentions without coordinates.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Geocoded %d of %d places, updated %d mentions", result.Resolved, result.Places, result.Updated)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failed)", result.Failed)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}
