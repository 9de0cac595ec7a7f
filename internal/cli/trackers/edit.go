package trackers

import (
	"fmt"

	"github.com/kirastone/trackly/internal/cli"
)

type EditCmd struct {
	ID       string `arg:"" help:"Tracker id."`
	Name     string `help:"New name."`
	Category string `short:"c" help:"Move the tracker to this category."`
	Weekdays string `short:"w" help:"Replacement schedule, e.g. 'mon,wed'."`
	Color    string `help:"New hex color token."`
	Emoji    string `help:"New emoji."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	id, err := cli.ParseTrackerID(c.ID)
	if err != nil {
		return err
	}

	tracker, err := ctx.Store.GetTracker(id)
	if err != nil {
		return err
	}
	category, err := cli.CategoryOf(ctx.Store, id)
	if err != nil {
		return err
	}

	if c.Name != "" {
		tracker.Name = c.Name
	}
	if c.Color != "" {
		tracker.Color = c.Color
	}
	if c.Emoji != "" {
		tracker.Emoji = c.Emoji
	}
	if c.Weekdays != "" {
		schedule, err := cli.ParseWeekdays(c.Weekdays)
		if err != nil {
			return err
		}
		tracker.Schedule = schedule
	}
	if c.Category != "" {
		category = c.Category
	}

	if err := ctx.Store.UpdateTracker(tracker, category); err != nil {
		return err
	}

	fmt.Printf("Updated tracker: %s\n", tracker.Name)
	return nil
}
