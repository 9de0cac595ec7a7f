package categories

import (
	"fmt"

	"github.com/kirastone/trackly/internal/cli"
)

type AddCmd struct {
	Heading string `arg:"" help:"Category heading."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.AddCategory(c.Heading); err != nil {
		return err
	}

	fmt.Printf("Category %q is available\n", c.Heading)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	categories, err := ctx.Store.GetCategories()
	if err != nil {
		return err
	}

	if len(categories) == 0 {
		fmt.Println("No categories found")
		return nil
	}

	for _, category := range categories {
		fmt.Printf("%s (%d tracker(s))\n", cli.HeadingStyle.Render(category.Heading), len(category.Trackers))
	}
	return nil
}
