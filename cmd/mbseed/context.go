package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/handiism/mb-seeder/internal/browser"
	"github.com/handiism/mb-seeder/internal/config"
	"github.com/handiism/mb-seeder/internal/logging"
	"github.com/handiism/mb-seeder/internal/submit"
)

// globalFlags are the persistent flags of the root command. Zero values mean
// "use the config file".
type globalFlags struct {
	config     string
	verbose    bool
	serverHost string
	serverPort int
	noBrowser  bool
	outputDir  string
}

type commandContext struct {
	flags  globalFlags
	fs     afero.Fs
	opener browser.Opener

	settingsOnce sync.Once
	settings     *config.Settings
	settingsErr  error

	logger zerolog.Logger
	closer io.Closer
}

func newCommandContext(fs afero.Fs, opener browser.Opener) *commandContext {
	return &commandContext{fs: fs, opener: opener, logger: zerolog.Nop()}
}

// configPath returns the --config flag or the default location.
func (c *commandContext) configPath() string {
	if p := strings.TrimSpace(c.flags.config); p != "" {
		return p
	}
	return config.DefaultPath()
}

// ensureSettings loads the config file once and applies flag overrides.
func (c *commandContext) ensureSettings(cmd *cobra.Command) (*config.Settings, error) {
	c.settingsOnce.Do(func() {
		settings, err := config.Load(c.fs, c.configPath())
		if err != nil {
			c.settingsErr = fmt.Errorf("load config: %w", err)
			return
		}

		flags := cmd.Flags()
		if flags.Changed("server-host") {
			settings.ServerHost = c.flags.serverHost
		}
		if flags.Changed("server-port") {
			settings.ServerPort = c.flags.serverPort
		}
		if flags.Changed("output-dir") {
			settings.OutputDir = c.flags.outputDir
		}
		if c.flags.noBrowser {
			settings.OpenBrowser = false
		}
		if c.flags.verbose {
			settings.Verbose = true
		}

		if err := settings.Validate(); err != nil {
			c.settingsErr = err
			return
		}
		c.settings = settings
	})
	return c.settings, c.settingsErr
}

// setupLogging installs the global logger for a command run.
func (c *commandContext) setupLogging(cmd *cobra.Command, settings *config.Settings) error {
	logger, closer, err := logging.Setup(logging.Options{
		Console: cmd.ErrOrStderr(),
		File:    settings.LogFile,
		Verbose: settings.Verbose,
	})
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	c.logger = logger
	c.closer = closer
	return nil
}

func (c *commandContext) close() {
	if c.closer != nil {
		c.closer.Close()
	}
}

// newManager creates a submit.Manager that prints progress to out.
func (c *commandContext) newManager(settings *config.Settings, out io.Writer) (*submit.Manager, error) {
	opts := []submit.Option{submit.WithFs(c.fs), submit.WithLogger(c.logger)}
	if c.opener != nil {
		opts = append(opts, submit.WithOpener(c.opener))
	}
	return submit.NewManager(settings, progressPrinter(out, settings.Verbose), opts...)
}
