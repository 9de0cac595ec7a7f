package backups

import (
	"fmt"
	"path/filepath"

	"github.com/kirastone/trackly/internal/backup"
	"github.com/kirastone/trackly/internal/cli"
	"github.com/kirastone/trackly/internal/constants"
)

type CreateCmd struct{}

func (c *CreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.Create()
	if err != nil {
		return err
	}

	fmt.Printf("Created backup %s\n", path)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found")
		return nil
	}

	fmt.Printf("Backups in %s:\n", mgr.BackupDir())
	for _, b := range backups {
		fmt.Printf("  %s  %s  %d bytes\n",
			filepath.Base(b.Path),
			b.Timestamp.Format(constants.DateFormat+" 15:04:05"),
			b.Size)
	}
	return nil
}

type RestoreCmd struct {
	Name string `arg:"" optional:"" help:"Backup file name. Defaults to the newest backup."`
}

func (c *RestoreCmd) Run(ctx *cli.Context) error {
	// Close any open handle so the restore replaces a quiescent file.
	if err := ctx.Store.Close(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	path := ""
	if c.Name == "" {
		backups, err := mgr.List()
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			return fmt.Errorf("no backups available to restore")
		}
		path = backups[0].Path
	} else {
		path = filepath.Join(mgr.BackupDir(), c.Name)
	}

	if err := mgr.Restore(path); err != nil {
		return err
	}

	fmt.Printf("Restored %s from %s\n", ctx.Store.GetConfigPath(), filepath.Base(path))
	return nil
}
