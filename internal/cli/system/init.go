package system

import (
	"fmt"

	"github.com/kirastone/trackly/internal/cli"
	"github.com/kirastone/trackly/internal/seed"
)

type InitCmd struct {
	Seed bool `help:"Insert starter categories and trackers."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	if c.Seed {
		if err := seed.Apply(ctx.Store); err != nil {
			return fmt.Errorf("failed to seed starter data: %w", err)
		}
	}

	fmt.Printf("Initialized storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}
