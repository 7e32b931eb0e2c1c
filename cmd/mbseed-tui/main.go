package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/handiism/mb-seeder/internal/config"
	"github.com/handiism/mb-seeder/internal/logging"
	"github.com/handiism/mb-seeder/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	path := config.DefaultPath()
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	settings, err := config.Load(afero.NewOsFs(), path)
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI, so logs only go to the log file.
	_, closer, err := logging.Setup(logging.Options{File: settings.LogFile, Verbose: settings.Verbose})
	if err != nil {
		return err
	}
	defer closer.Close()

	return tui.Run(settings)
}
