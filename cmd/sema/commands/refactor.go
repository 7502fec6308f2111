package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/zerr"
)

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "diff", "Patch output format: diff or full")
}

func patchFormat(cmd *cobra.Command) (ports.PatchFormat, error) {
	// Applying needs the complete new contents; a diff cannot be written back.
	if apply, _ := cmd.Flags().GetBool("apply"); apply {
		return ports.PatchFormatFull, nil
	}
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "", "diff":
		return ports.PatchFormatDiff, nil
	case "full":
		return ports.PatchFormatFull, nil
	default:
		return "", zerr.New("format must be diff or full")
	}
}

func (c *CLI) newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename FILE LINE COL NEW_NAME",
		Short: "Rename the symbol at a position across the workspace",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseQueryArgs(args[:3])
			if err != nil {
				return err
			}
			format, err := patchFormat(cmd)
			if err != nil {
				return err
			}
			result, err := c.app.Rename(cmd.Context(), workspaceRoot(cmd), ports.RenameRequest{
				QueryRequest: query,
				NewName:      args[3],
				OutputFormat: format,
			})
			if err != nil {
				return err
			}
			return finishPatches(cmd, result)
		},
	}
	addFormatFlag(cmd)
	addApplyFlags(cmd)
	return cmd
}

func (c *CLI) newExtractMethodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract-method FILE START_LINE END_LINE NAME",
		Short: "Extract a line range into a new function",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			startLine, err := strconv.Atoi(args[1])
			if err != nil || startLine < 1 {
				return zerr.New("START_LINE must be a positive integer")
			}
			endLine, err := strconv.Atoi(args[2])
			if err != nil || endLine < startLine {
				return zerr.New("END_LINE must be an integer >= START_LINE")
			}
			format, err := patchFormat(cmd)
			if err != nil {
				return err
			}
			result, err := c.app.ExtractMethod(cmd.Context(), workspaceRoot(cmd), ports.ExtractMethodRequest{
				File:         args[0],
				StartLine:    startLine,
				EndLine:      endLine,
				MethodName:   args[3],
				OutputFormat: format,
			})
			if err != nil {
				return err
			}
			return finishPatches(cmd, result)
		},
	}
	addFormatFlag(cmd)
	addApplyFlags(cmd)
	return cmd
}

func (c *CLI) newExtractVarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract-var FILE LINE NAME",
		Short: "Bind an expression to a new variable",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := strconv.Atoi(args[1])
			if err != nil || line < 1 {
				return zerr.New("LINE must be a positive integer")
			}
			startCol, _ := cmd.Flags().GetInt("start-col")
			endCol, _ := cmd.Flags().GetInt("end-col")
			endLine, _ := cmd.Flags().GetInt("end-line")
			if endLine == 0 {
				endLine = line
			}
			format, err := patchFormat(cmd)
			if err != nil {
				return err
			}
			result, err := c.app.ExtractVariable(cmd.Context(), workspaceRoot(cmd), ports.ExtractVarRequest{
				File:         args[0],
				StartLine:    line,
				EndLine:      endLine,
				StartCol:     startCol,
				EndCol:       endCol,
				VarName:      args[2],
				OutputFormat: format,
			})
			if err != nil {
				return err
			}
			return finishPatches(cmd, result)
		},
	}
	cmd.Flags().Int("start-col", 0, "1-based column where the expression starts (whole line when omitted)")
	cmd.Flags().Int("end-col", 0, "1-based column just past the expression end")
	cmd.Flags().Int("end-line", 0, "Last line of the expression (defaults to LINE)")
	addFormatFlag(cmd)
	addApplyFlags(cmd)
	return cmd
}

func (c *CLI) newOrganizeImportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize-imports FILE",
		Short: "Sort and deduplicate a file's imports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := patchFormat(cmd)
			if err != nil {
				return err
			}
			result, err := c.app.OrganizeImports(cmd.Context(), workspaceRoot(cmd), ports.OrganizeImportsRequest{
				File:         args[0],
				OutputFormat: format,
			})
			if err != nil {
				return err
			}
			return finishPatches(cmd, result)
		},
	}
	addFormatFlag(cmd)
	addApplyFlags(cmd)
	return cmd
}

func (c *CLI) newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move FILE LINE COL DEST_FILE",
		Short: "Move the top-level definition at a position to another file",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseQueryArgs(args[:3])
			if err != nil {
				return err
			}
			format, err := patchFormat(cmd)
			if err != nil {
				return err
			}
			result, err := c.app.Move(cmd.Context(), workspaceRoot(cmd), ports.MoveRequest{
				QueryRequest: query,
				DestFile:     args[3],
				OutputFormat: format,
			})
			if err != nil {
				return err
			}
			return finishPatches(cmd, result)
		},
	}
	addFormatFlag(cmd)
	addApplyFlags(cmd)
	return cmd
}
