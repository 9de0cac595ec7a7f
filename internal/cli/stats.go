package cli

import "fmt"

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	stats, err := ctx.Store.GetStats()
	if err != nil {
		return err
	}
	total, err := ctx.Store.CompletedCount()
	if err != nil {
		return err
	}

	if total == 0 {
		fmt.Println("Nothing to analyze yet. Complete a tracker first.")
		return nil
	}

	fmt.Println(HeadingStyle.Render("Statistics"))
	fmt.Printf("  Trackers completed: %d\n", total)
	fmt.Printf("  Perfect days:       %d\n", stats.PerfectDays)
	fmt.Printf("  Average per day:    %d\n", stats.AverageCompletions)
	fmt.Printf("  Best streak:        %d day(s)\n", stats.BestStreak)
	return nil
}
