package system

import (
	"fmt"
	"os"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/kirastone/trackly/internal/backup"
	"github.com/kirastone/trackly/internal/cli"
	"github.com/kirastone/trackly/internal/constants"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("FAIL storage reachable: %v\n", err)
		hasError = true
	} else {
		fmt.Println("ok   storage reachable")
	}

	// Check 2: backups present (warning only)
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	switch {
	case err != nil:
		fmt.Printf("warn backups: %v\n", err)
	case len(backups) == 0:
		fmt.Println("warn backups: none found, consider 'trackly backup create'")
	default:
		fmt.Printf("ok   backups: %d available\n", len(backups))
	}

	// Check 3: no other trackly process writing the same store. Stores are
	// single-writer; a second process can corrupt a JSON store mid-write.
	if others, err := otherInstances(); err != nil {
		fmt.Printf("warn process check: %v\n", err)
	} else if others > 0 {
		fmt.Printf("warn process check: %d other %s process(es) running\n", others, constants.AppName)
	} else {
		fmt.Println("ok   process check: no concurrent instance")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func otherInstances() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}

	self := os.Getpid()
	count := 0
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			count++
		}
	}
	return count, nil
}
