package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/zerr"
)

func (c *CLI) newDefsCmd() *cobra.Command {
	return c.newQueryCmd("defs", "Find the definition of the symbol at a position",
		func(ctx context.Context, root string, req ports.QueryRequest) (any, error) {
			return c.app.Definitions(ctx, root, req)
		})
}

func (c *CLI) newRefsCmd() *cobra.Command {
	return c.newQueryCmd("refs", "Find workspace-wide references to the symbol at a position",
		func(ctx context.Context, root string, req ports.QueryRequest) (any, error) {
			return c.app.References(ctx, root, req)
		})
}

func (c *CLI) newOccurrencesCmd() *cobra.Command {
	return c.newQueryCmd("occurrences", "Find same-file occurrences of the symbol at a position",
		func(ctx context.Context, root string, req ports.QueryRequest) (any, error) {
			return c.app.Occurrences(ctx, root, req)
		})
}

func (c *CLI) newHoverCmd() *cobra.Command {
	return c.newQueryCmd("hover", "Describe the symbol at a position",
		func(ctx context.Context, root string, req ports.QueryRequest) (any, error) {
			return c.app.Hover(ctx, root, req)
		})
}

// newQueryCmd builds one FILE LINE COL command; the four position queries
// differ only in which application call they dispatch.
func (c *CLI) newQueryCmd(
	use, short string,
	query func(ctx context.Context, root string, req ports.QueryRequest) (any, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " FILE LINE COL",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := parseQueryArgs(args)
			if err != nil {
				return err
			}
			result, err := query(cmd.Context(), workspaceRoot(cmd), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

func parseQueryArgs(args []string) (ports.QueryRequest, error) {
	line, err := strconv.Atoi(args[1])
	if err != nil || line < 1 {
		return ports.QueryRequest{}, zerr.New("LINE must be a positive integer")
	}
	col, err := strconv.Atoi(args[2])
	if err != nil || col < 1 {
		return ports.QueryRequest{}, zerr.New("COL must be a positive integer")
	}
	return ports.QueryRequest{File: args[0], Line: line, Col: col}, nil
}
