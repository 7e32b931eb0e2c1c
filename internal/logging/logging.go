// Package logging sets up the global zerolog logger for the mb-seeder
// commands.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options configures Setup.
type Options struct {
	// Console receives human readable output. Nil disables it.
	Console io.Writer

	// File is a log file path. Empty disables file logging. The file is
	// rotated at 1 MB, keeping two old copies.
	File string

	// Verbose lowers the level from info to debug.
	Verbose bool
}

// Setup builds a logger from opts, installs it as the global logger and
// returns it.
//
// The returned closer releases the log file, if any.
func Setup(opts Options) (zerolog.Logger, io.Closer, error) {
	var (
		writers []io.Writer
		closer  io.Closer = nopCloser{}
	)

	if opts.Console != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: opts.Console, TimeFormat: "15:04:05"})
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
			return zerolog.Nop(), nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    1,
			MaxBackups: 2,
		}
		writers = append(writers, lj)
		closer = lj
	}

	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
	log.Logger = logger

	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
