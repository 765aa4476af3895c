package main

import (
	"errors"
	"os"

	"github.com/dsatrack/dsatrack/internal/cli"
	"github.com/dsatrack/dsatrack/internal/ui"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			ui.NewPrinter(os.Stderr).Error("%v", err)
		}
		os.Exit(1)
	}
}
