package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/bizray-tui/cmd"
	"github.com/atomicstack/bizray-tui/internal/config"
	"github.com/atomicstack/bizray-tui/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		os.Exit(report(err))
	}
}

// report prints err and returns the process exit code.
func report(err error) int {
	if errors.Is(err, config.ErrInvalid) {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
