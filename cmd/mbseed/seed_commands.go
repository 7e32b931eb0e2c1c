package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/mb-seeder/internal/config"
	"github.com/handiism/mb-seeder/internal/model"
	"github.com/handiism/mb-seeder/internal/seed"
)

// prepare loads the settings and sets up logging for a command run.
func (c *commandContext) prepare(cmd *cobra.Command) (*config.Settings, error) {
	settings, err := c.ensureSettings(cmd)
	if err != nil {
		return nil, err
	}
	if err := c.setupLogging(cmd, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func newClustersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clusters <path>...",
		Short: "List the clusters and files found below the given paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.prepare(cmd)
			if err != nil {
				return err
			}
			defer ctx.close()

			manager, err := ctx.newManager(settings, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			lib, err := manager.Load(cmd.Context(), args)
			if err != nil {
				return err
			}

			printLibrary(cmd.OutOrStdout(), lib)
			return nil
		},
	}
}

// newSeedCommands returns one command per default action.
func newSeedCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newSeedCommand(ctx, "release", seed.AddClusterAsRelease),
		newSeedCommand(ctx, "recording", seed.AddFileAsRecording),
		newSeedCommand(ctx, "file-release", seed.AddFileAsRelease),
	}
}

func newSeedCommand(ctx *commandContext, use string, action *seed.Action) *cobra.Command {
	var index int

	flagName := "file"
	if action.Target == model.KindCluster {
		flagName = "cluster"
	}

	cmd := &cobra.Command{
		Use:   use + " <path>...",
		Short: fmt.Sprintf("%s (select the %s with --%s)", action.Name, action.Target, flagName),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.prepare(cmd)
			if err != nil {
				return err
			}
			defer ctx.close()

			manager, err := ctx.newManager(settings, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			lib, err := manager.Load(cmd.Context(), args)
			if err != nil {
				return err
			}

			target, err := lib.Target(action.Target, index-1)
			if err != nil {
				return err
			}

			path, err := manager.Run(cmd.Context(), action.ID, []model.Target{target})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().IntVar(&index, flagName, 1, fmt.Sprintf("Number of the %s, as listed by the clusters command", action.Target))
	return cmd
}

func newActionsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the available seeding actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := seed.NewRegistry()
			if err := seed.RegisterDefaults(registry); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, a := range registry.All() {
				fmt.Fprintf(out, "%-24s %-8s %-18s %s\n", a.ID, a.Target, a.SubmitPath, a.Name)
			}
			return nil
		},
	}
}
