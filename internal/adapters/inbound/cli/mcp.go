package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/stockroute/stockroute/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the stockroute MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start stockroute MCP server (stdio)",
		Long:  "Start the stockroute MCP server using stdio transport. This lets AI assistants allocate orders, restock warehouses and read saved inventory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(projectPath)
			if err != nil {
				return err
			}
			// stdout carries the protocol; logs go to stderr.
			log := newLogger(cmd)
			warehouses, err := newService(log).Inventory(absPath)
			if err != nil {
				return err
			}
			log.Info().Str("path", absPath).Int("warehouses", len(warehouses)).Msg("mcp server starting")
			s := mcpadapter.NewStockrouteMCPServer(absPath, log)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")

	return cmd
}
