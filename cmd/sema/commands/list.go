package commands

import (
	"github.com/spf13/cobra"

	"go.trai.ch/sema/internal/core/ports"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list PATH",
		Short: "List top-level functions and classes in a file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.ListSymbols(cmd.Context(), workspaceRoot(cmd), ports.ListRequest{
				Path: args[0],
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}
