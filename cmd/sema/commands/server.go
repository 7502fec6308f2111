package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/sema/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Manage workspace servers",
	}

	cmd.AddCommand(c.newServerServeCmd())
	cmd.AddCommand(c.newServerStatusCmd())
	cmd.AddCommand(c.newServerStopCmd())
	cmd.AddCommand(c.newServerListCmd())

	return cmd
}

func (c *CLI) newServerServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "serve",
		Short:  "Run a workspace server in the foreground (internal use)",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			port, _ := cmd.Flags().GetInt("port")
			if port <= 0 {
				return zerr.New("--port is required")
			}
			daemonize, _ := cmd.Flags().GetBool("daemon")
			return c.app.Serve(cmd.Context(), app.ServeOptions{
				Root:   workspaceRoot(cmd),
				Port:   port,
				Daemon: daemonize,
			})
		},
	}
	cmd.Flags().Int("port", 0, "Loopback port to bind")
	cmd.Flags().Bool("daemon", false, "Run detached from a terminal, logging as JSON")
	return cmd
}

func (c *CLI) newServerStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the workspace server's health",
		RunE: func(cmd *cobra.Command, _ []string) error {
			health, err := c.app.ServerStatus(cmd.Context(), workspaceRoot(cmd))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), health)
		},
	}
}

func (c *CLI) newServerStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the workspace server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.StopServer(cmd.Context(), workspaceRoot(cmd)); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "server stopped")
			return nil
		},
	}
}

func (c *CLI) newServerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all running workspace servers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			servers, err := c.app.ListServers()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), servers)
		},
	}
}
