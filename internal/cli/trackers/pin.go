package trackers

import (
	"fmt"

	"github.com/kirastone/trackly/internal/cli"
)

type PinCmd struct {
	ID string `arg:"" help:"Tracker id."`
}

func (c *PinCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	id, err := cli.ParseTrackerID(c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.PinTracker(id); err != nil {
		return err
	}

	tracker, err := ctx.Store.GetTracker(id)
	if err != nil {
		return err
	}

	if tracker.IsPinned {
		fmt.Printf("Pinned %s\n", tracker.Name)
	} else {
		fmt.Printf("Unpinned %s\n", tracker.Name)
	}
	return nil
}
