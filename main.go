package main

import (
	"github.com/curaprof/curaprof/cmd"
	errUtils "github.com/curaprof/curaprof/errors"
	log "github.com/curaprof/curaprof/pkg/logger"
)

func main() {
	// Use errUtils.OsExit so tests can intercept the exit.
	errUtils.OsExit(run())
}

// run executes the CLI and returns an exit code. The separation keeps
// deferred cleanup working, since os.Exit skips defers.
func run() int {
	err := cmd.Execute()
	if err != nil {
		errUtils.CheckErrorAndPrint(err)
		log.Debug("exiting with error", "error", err)
		return 1
	}
	return 0
}
