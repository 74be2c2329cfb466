package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <file>...",
		Short: "Print the module declaration and imports of source files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := c.app.Scan(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := c.app.Output()
			for _, info := range infos {
				module := info.Module
				if module == "" {
					module = "(none)"
				}
				_, _ = fmt.Fprintf(out, "%s: module %s\n", info.Path, module)
				for _, imp := range info.Imports {
					_, _ = fmt.Fprintf(out, "  import %s\n", imp)
				}
			}
			return nil
		},
	}
}
