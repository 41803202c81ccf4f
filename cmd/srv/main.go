package main

import (
	"fmt"
	"os"

	"github.com/SW1MD/dnd-proj-sub001/pkg/errorx"
)

var server srv

func main() {
	server.loadApp()

	if err := server.app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// A refused destructive rollback exits with its own code so that scripts
// can tell it apart from a failure.
func exitCode(err error) int {
	switch {
	case errorx.Is(err, errorx.DestructiveRollback):
		return 3
	case errorx.Is(err, errorx.UnknownEnvironment), errorx.Is(err, errorx.InvalidConfig):
		return 2
	}

	return 1
}
