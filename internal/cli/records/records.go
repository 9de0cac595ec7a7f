package records

import (
	"errors"
	"fmt"

	"github.com/kirastone/trackly/internal/cli"
	"github.com/kirastone/trackly/internal/models"
	"github.com/kirastone/trackly/internal/storage"
)

type CompleteCmd struct {
	ID   string `arg:"" help:"Tracker id."`
	Date string `short:"d" help:"Day to mark (YYYY-MM-DD). Defaults to today."`
}

func (c *CompleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	id, err := cli.ParseTrackerID(c.ID)
	if err != nil {
		return err
	}
	date, err := cli.ParseDate(c.Date)
	if err != nil {
		return err
	}

	tracker, err := ctx.Store.GetTracker(id)
	if err != nil {
		return err
	}

	if err := ctx.Store.AddRecord(id, date); err != nil {
		return err
	}

	fmt.Printf("%s %s on %s\n", cli.DoneStyle.Render("Completed"), tracker.Name, models.DayOf(date))
	return nil
}

type UncompleteCmd struct {
	ID   string `arg:"" help:"Tracker id."`
	Date string `short:"d" help:"Day to unmark (YYYY-MM-DD). Defaults to today."`
}

func (c *UncompleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	id, err := cli.ParseTrackerID(c.ID)
	if err != nil {
		return err
	}
	date, err := cli.ParseDate(c.Date)
	if err != nil {
		return err
	}

	tracker, err := ctx.Store.GetTracker(id)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteRecord(id, date); err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			fmt.Printf("%s was not completed on %s\n", tracker.Name, models.DayOf(date))
			return nil
		}
		return err
	}

	fmt.Printf("Unmarked %s on %s\n", tracker.Name, models.DayOf(date))
	return nil
}
