package trackers

import (
	"fmt"

	"github.com/kirastone/trackly/internal/cli"
)

type DeleteCmd struct {
	ID string `arg:"" help:"Tracker id."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
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

	if err := ctx.Store.DeleteTracker(id); err != nil {
		return err
	}

	fmt.Printf("Deleted %s and its records\n", tracker.Name)
	return nil
}
