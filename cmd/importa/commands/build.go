package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/importa/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build every module of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			keepGoing, _ := cmd.Flags().GetBool("keep-going")
			return c.app.Build(cmd.Context(), app.BuildOptions{
				DryRun:    dryRun,
				KeepGoing: keepGoing,
				Toolchain: toolchainOverrides(cmd),
			})
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Print the commands instead of running them")
	cmd.Flags().BoolP("keep-going", "k", false, "Keep building modules that do not depend on a failed one")
	addToolchainFlags(cmd)
	return cmd
}
