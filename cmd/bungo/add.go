package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/fwojciec/bungo"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	// Force mode: delete existing work first
	if c.Force {
		existing, err := deps.Works.FindWorks(deps.Ctx, bungo.WorkFilter{Title: &c.Title, Author: &c.Author})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", bungo.ErrorMessage(err))
			return err
		}
		for _, w := range existing {
			if err := deps.Works.DeleteWork(deps.Ctx, w.ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", bungo.ErrorMessage(err))
				return err
			}
		}
	}

	text, err := deps.Source.FetchNormalizedText(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bungo.ErrorMessage(err))
		return err
	}

	work := &bungo.Work{
		Title:     c.Title,
		Author:    c.Author,
		SourceURL: c.URL,
		Content:   text,
	}
	if err := deps.Works.CreateWork(deps.Ctx, work); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bungo.ErrorMessage(err))
		if bungo.ErrorCode(err) == bungo.ECONFLICT {
			fmt.Fprintln(deps.Stderr, "Hint: Use --force to replace it")
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added %q by %s (%s)\n", work.Title, work.Author, work.ID)
	fmt.Fprintf(deps.Stdout, "  %d characters\n", utf8.RuneCountInString(text))
	return nil
}

// Run executes the refresh command.
func (c *RefreshCmd) Run(deps *Dependencies) error {
	work, err := deps.Works.FindWorkByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bungo.ErrorMessage(err))
		return err
	}

	text, err := deps.Source.FetchNormalizedText(deps.Ctx, work.SourceURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bungo.ErrorMessage(err))
		return err
	}

	oldHash := work.ContentHash
	updated, err := deps.Works.UpdateWork(deps.Ctx, work.ID, bungo.WorkUpdate{Content: &text})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bungo.ErrorMessage(err))
		return err
	}

	if updated.ContentHash == oldHash {
		fmt.Fprintf(deps.Stdout, "%q is unchanged\n", work.Title)
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Updated %q. Run 'bungo extract --work %s --replace' to refresh its mentions.\n", work.Title, work.ID)
	return nil
}
