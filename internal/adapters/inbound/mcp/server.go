package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/stockroute/stockroute/internal/adapters/outbound/config"
	"github.com/stockroute/stockroute/internal/adapters/outbound/gitinfo"
	"github.com/stockroute/stockroute/internal/adapters/outbound/journal"
	"github.com/stockroute/stockroute/internal/adapters/outbound/state"
	"github.com/stockroute/stockroute/internal/application"
)

// NewStockrouteMCPServer creates a new MCP server with all stockroute tools and
// resources registered. The projectPath is the directory holding the saved
// inventory. All tool calls share one AllocationService, so concurrent
// requests are applied one at a time.
func NewStockrouteMCPServer(projectPath string, log zerolog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"stockroute",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	svc := application.NewAllocationService(
		state.New(),
		journal.New(),
		config.New(),
		gitinfo.New(),
		log,
	)

	registerTools(s, svc, projectPath)
	registerResources(s, svc, projectPath)

	return s
}
