package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/importa/internal/app"
)

func (c *CLI) newLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Link the objects recorded by the last build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			return c.app.Link(cmd.Context(), app.BuildOptions{
				DryRun:    dryRun,
				Toolchain: toolchainOverrides(cmd),
			})
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Print the link command instead of running it")
	addToolchainFlags(cmd)
	return cmd
}
