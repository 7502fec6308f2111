// Package commands implements the CLI commands for the sema analysis tool.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/sema/internal/app"
	"go.trai.ch/sema/internal/build"
	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
)

// CLI represents the command line interface for sema.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Definitions(ctx context.Context, root string, req ports.QueryRequest) (*ports.LocationsResult, error)
	References(ctx context.Context, root string, req ports.QueryRequest) (*ports.LocationsResult, error)
	Occurrences(ctx context.Context, root string, req ports.QueryRequest) (*ports.LocationsResult, error)
	Hover(ctx context.Context, root string, req ports.QueryRequest) (*ports.Hover, error)
	Rename(ctx context.Context, root string, req ports.RenameRequest) (*ports.PatchSet, error)
	ExtractMethod(ctx context.Context, root string, req ports.ExtractMethodRequest) (*ports.PatchSet, error)
	ExtractVariable(ctx context.Context, root string, req ports.ExtractVarRequest) (*ports.PatchSet, error)
	OrganizeImports(ctx context.Context, root string, req ports.OrganizeImportsRequest) (*ports.PatchSet, error)
	Move(ctx context.Context, root string, req ports.MoveRequest) (*ports.PatchSet, error)
	ListSymbols(ctx context.Context, root string, req ports.ListRequest) (*ports.SymbolsResult, error)
	ServerStatus(ctx context.Context, root string) (*ports.HealthInfo, error)
	StopServer(ctx context.Context, root string) error
	ListServers() ([]domain.ServerInfo, error)
	Serve(ctx context.Context, opts app.ServeOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "sema",
		Short:         "Workspace semantic analysis for Python projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("root", "r", ".", "Workspace root directory")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newDefsCmd())
	rootCmd.AddCommand(c.newRefsCmd())
	rootCmd.AddCommand(c.newOccurrencesCmd())
	rootCmd.AddCommand(c.newHoverCmd())
	rootCmd.AddCommand(c.newRenameCmd())
	rootCmd.AddCommand(c.newExtractMethodCmd())
	rootCmd.AddCommand(c.newExtractVarCmd())
	rootCmd.AddCommand(c.newOrganizeImportsCmd())
	rootCmd.AddCommand(c.newMoveCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newServerCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// printJSON writes v to w as indented JSON, the output contract of every
// query and refactor command.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func workspaceRoot(cmd *cobra.Command) string {
	root, _ := cmd.Flags().GetString("root")
	if root == "" {
		root = "."
	}
	return root
}
