package system

import (
	"fmt"

	"github.com/kirastone/trackly/internal/cli"
	"github.com/kirastone/trackly/internal/storage/sqlite"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		fmt.Println("Migrations only apply to the SQLite backend; nothing to do.")
		return nil
	}

	applied, err := store.Migrate(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return err
	}

	if applied == 0 {
		fmt.Println("Nothing to migrate.")
	} else {
		fmt.Printf("Applied %d migration(s).\n", applied)
	}
	return nil
}
