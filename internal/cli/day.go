package cli

import (
	"fmt"
	"time"

	"github.com/kirastone/trackly/internal/models"
	"github.com/kirastone/trackly/internal/visibility"
)

type DayCmd struct {
	Date   string `arg:"" optional:"" help:"Day to show (YYYY-MM-DD). Defaults to today."`
	Search string `short:"s" help:"Show only trackers whose name contains this text."`
	Filter string `short:"f" help:"Completion filter (all|today|completed|not_completed)." default:"all"`
}

func (c *DayCmd) Validate() error {
	switch visibility.Filter(c.Filter) {
	case visibility.FilterAll, visibility.FilterToday, visibility.FilterCompleted, visibility.FilterNotCompleted:
		return nil
	}
	return fmt.Errorf("invalid filter: %s", c.Filter)
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	selected, err := ParseDate(c.Date)
	if err != nil {
		return err
	}

	categories, err := ctx.Store.GetCategories()
	if err != nil {
		return err
	}
	records, err := AllRecords(ctx.Store)
	if err != nil {
		return err
	}

	now := time.Now()
	filter := visibility.Filter(c.Filter)
	groups, state := visibility.Compute(categories, records, selected, now, c.Search, filter)

	if filter == visibility.FilterToday {
		selected = now
	}
	day := models.DayOf(selected)
	fmt.Printf("Trackers for %s (%s)\n\n", day, models.WeekDayFromTime(selected.Weekday()))

	switch state {
	case visibility.StateNoTrackers:
		fmt.Println("Nothing to track today. Add a habit with 'trackly tracker add'.")
		return nil
	case visibility.StateNotFound:
		fmt.Println("Nothing found")
		return nil
	}

	completed := indexDayRecords(records, day)
	for _, group := range groups {
		fmt.Println(HeadingStyle.Render(group.Heading))
		for _, tracker := range group.Trackers {
			mark := "[ ]"
			if completed[tracker.ID.String()] {
				mark = DoneStyle.Render("[x]")
			}
			name := tracker.Name
			if tracker.IsPinned {
				name = PinnedStyle.Render(name)
			}
			fmt.Printf("  %s %s %s %s\n", mark, tracker.Emoji, name, DimStyle.Render(tracker.ID.String()))
		}
		fmt.Println()
	}
	return nil
}

func indexDayRecords(records []models.TrackerRecord, day string) map[string]bool {
	completed := make(map[string]bool)
	for _, r := range records {
		if r.Day == day {
			completed[r.TrackerID.String()] = true
		}
	}
	return completed
}
