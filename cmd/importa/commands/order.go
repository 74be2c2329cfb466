package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Print the module compilation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := c.app.Order(cmd.Context())
			if err != nil {
				return err
			}

			out := c.app.Output()
			_, _ = fmt.Fprintln(out, "Determined module compilation order:")
			for _, name := range order {
				_, _ = fmt.Fprintf(out, "  -> %s\n", name)
			}
			return nil
		},
	}
}
