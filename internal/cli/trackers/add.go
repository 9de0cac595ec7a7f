package trackers

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kirastone/trackly/internal/cli"
	"github.com/kirastone/trackly/internal/models"
)

type AddCmd struct {
	Name     string `arg:"" help:"Tracker name."`
	Category string `short:"c" help:"Category heading." required:""`
	Weekdays string `short:"w" help:"Comma-separated schedule, e.g. 'mon,wed,fri'. Omit for irregular events."`
	Color    string `help:"Hex color token." default:"#FD4C49"`
	Emoji    string `help:"Emoji shown next to the name." default:"🙂"`
	Event    bool   `short:"e" help:"Create an irregular event instead of a habit."`
}

func (c *AddCmd) Validate() error {
	if c.Event && c.Weekdays != "" {
		return fmt.Errorf("irregular events have no schedule; drop --weekdays or --event")
	}
	if !c.Event && c.Weekdays == "" {
		return fmt.Errorf("habits need a schedule; pass --weekdays or use --event")
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	trackerType := models.TrackerHabit
	if c.Event {
		trackerType = models.TrackerIrregularEvent
	}

	schedule, err := cli.ParseWeekdays(c.Weekdays)
	if err != nil {
		return err
	}

	tracker := models.Tracker{
		ID:       uuid.New(),
		Name:     c.Name,
		Color:    c.Color,
		Emoji:    c.Emoji,
		Schedule: schedule,
		Type:     trackerType,
	}

	if err := ctx.Store.AddTracker(tracker, c.Category); err != nil {
		return err
	}

	fmt.Printf("Added tracker: %s (ID: %s)\n", c.Name, tracker.ID)
	return nil
}
