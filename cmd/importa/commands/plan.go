package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/importa/internal/app"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the commands that would build each module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plans, err := c.app.Plan(cmd.Context(), app.BuildOptions{Toolchain: toolchainOverrides(cmd)})
			if err != nil {
				return err
			}

			out := c.app.Output()
			for _, p := range plans {
				_, _ = fmt.Fprintf(out, "%s [%s]\n", p.Plan.Module, p.Fingerprint)
				for _, action := range p.Plan.Actions {
					_, _ = fmt.Fprintf(out, "  %s\n", action.Command.Render())
				}
			}
			return nil
		},
	}
	addToolchainFlags(cmd)
	return cmd
}
