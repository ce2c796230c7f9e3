package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/fwojciec/bungo"
)

// Run executes the works command.
func (c *WorksCmd) Run(deps *Dependencies) error {
	var filter bungo.WorkFilter
	if c.Author != "" {
		filter.Author = &c.Author
	}
	if c.Search != "" {
		filter.Query = &c.Search
	}

	works, err := deps.Works.FindWorks(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bungo.ErrorMessage(err))
		return err
	}

	if len(works) == 0 {
		fmt.Fprintln(deps.Stdout, "No works found. Use 'bungo add' to register one.")
		return nil
	}

	for _, w := range works {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d chars\n", w.ID, w.Title, w.Author, utf8.RuneCountInString(w.Content))
	}
	return nil
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		err := bungo.Errorf(bungo.EINVALID, "use --force to confirm deletion")
		fmt.Fprintf(deps.Stderr, "error: %s\n", bungo.ErrorMessage(err))
		return err
	}

	work, err := deps.Works.FindWorkByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bungo.ErrorMessage(err))
		return err
	}

	if err := deps.Works.DeleteWork(deps.Ctx, work.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bungo.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %q\n", work.Title)
	return nil
}
