package trackers

import (
	"fmt"

	"github.com/kirastone/trackly/internal/cli"
	"github.com/kirastone/trackly/internal/models"
)

type ListCmd struct {
	Category string `short:"c" help:"Show only this category."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	categories, err := ctx.Store.GetCategories()
	if err != nil {
		return err
	}

	shown := 0
	for _, category := range categories {
		if c.Category != "" && category.Heading != c.Category {
			continue
		}
		if len(category.Trackers) == 0 {
			continue
		}

		fmt.Println(cli.HeadingStyle.Render(category.Heading))
		for _, tracker := range category.Trackers {
			shown++
			kind := "habit"
			if tracker.Type == models.TrackerIrregularEvent {
				kind = "event"
			}
			name := tracker.Name
			if tracker.IsPinned {
				name = cli.PinnedStyle.Render("📌 " + name)
			}
			fmt.Printf("  %s %s (%s, %s)\n", tracker.Emoji, name, kind, cli.FormatSchedule(tracker.Schedule))
			fmt.Printf("     %s\n", cli.DimStyle.Render(tracker.ID.String()))
		}
	}

	if shown == 0 {
		fmt.Println("No trackers found")
	}
	return nil
}
