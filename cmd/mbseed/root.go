package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	return newRootCommandWithContext(newCommandContext(afero.NewOsFs(), nil))
}

func newRootCommandWithContext(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mbseed",
		Short:         "Seed MusicBrainz release and recording forms from tagged files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.flags.config, "config", "c", "", "Configuration file path")
	flags.BoolVarP(&ctx.flags.verbose, "verbose", "v", false, "Show verbose output")
	flags.StringVar(&ctx.flags.serverHost, "server-host", "", "MusicBrainz server host (overrides config)")
	flags.IntVar(&ctx.flags.serverPort, "server-port", 0, "MusicBrainz server port (overrides config)")
	flags.BoolVar(&ctx.flags.noBrowser, "no-browser", false, "Write the seed page without opening it")
	flags.StringVarP(&ctx.flags.outputDir, "output-dir", "o", "", "Directory for seed pages (default: a temporary file)")

	rootCmd.AddCommand(newClustersCommand(ctx))
	for _, cmd := range newSeedCommands(ctx) {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newActionsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
