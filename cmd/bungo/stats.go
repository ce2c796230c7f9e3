package main

import (
	"fmt"

	"github.com/fwojciec/bungo"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Stats.Stats(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bungo.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Works:     %d\n", stats.Works)
	fmt.Fprintf(deps.Stdout, "Mentions:  %d\n", stats.Mentions)
	fmt.Fprintf(deps.Stdout, "Places:    %d\n", stats.Places)
	fmt.Fprintf(deps.Stdout, "Geocoded:  %d\n", stats.Geocoded)
	return nil
}
