package main

import (
	"fmt"
	"io"

	"github.com/handiism/mb-seeder/internal/model"
	"github.com/handiism/mb-seeder/internal/submit"
)

// progressPrinter writes progress events to out, one per line.
func progressPrinter(out io.Writer, verbose bool) func(submit.ProgressEvent) {
	return func(event submit.ProgressEvent) {
		if event.Level == submit.LevelVerbose && !verbose {
			return
		}

		var prefix string
		switch event.Level {
		case submit.LevelError:
			prefix = "✗ "
		case submit.LevelWarning:
			prefix = "! "
		case submit.LevelSuccess:
			prefix = "✓ "
		case submit.LevelInfo:
			prefix = "› "
		default:
			prefix = "  "
		}

		fmt.Fprintln(out, prefix+event.Message)
	}
}

// printLibrary lists clusters and files with the numbers used by --cluster
// and --file.
func printLibrary(out io.Writer, lib *submit.Library) {
	fileNumbers := make(map[*model.File]int, len(lib.Files))
	for i, f := range lib.Files {
		fileNumbers[f] = i + 1
	}

	for i, c := range lib.Clusters {
		fmt.Fprintf(out, "%3d  %s (%d files)\n", i+1, c.Title(), len(c.Files))
		for _, f := range c.Files {
			fmt.Fprintf(out, "       file %-3d %s  %s  [%s]\n",
				fileNumbers[f],
				f.Metadata.GetDefault(model.TagTrackNumber, "-"),
				f.Metadata.GetDefault(model.TagTitle, f.Metadata.Get(model.TagFilename)),
				f.Metadata.Get(model.TagLength),
			)
		}
	}
}
