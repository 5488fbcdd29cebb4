package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/stockroute/stockroute/internal/application"
)

const (
	inventoryURI = "stockroute://inventory"
	journalURI   = "stockroute://journal"
)

// registerResources registers all stockroute MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *application.AllocationService, projectPath string) {
	// 1. stockroute://inventory - saved stock
	s.AddResource(
		mcplib.NewResource(
			inventoryURI,
			"Inventory",
			mcplib.WithResourceDescription("Saved warehouse stock in priority order"),
			mcplib.WithMIMEType("application/json"),
		),
		handleInventoryResource(svc, projectPath),
	)

	// 2. stockroute://journal - operation history
	s.AddResource(
		mcplib.NewResource(
			journalURI,
			"Journal",
			mcplib.WithResourceDescription("Seed, restock and allocate operations, oldest first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleJournalResource(svc, projectPath),
	)
}

func handleInventoryResource(svc *application.AllocationService, projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		warehouses, err := svc.Inventory(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading inventory: %w", err)
		}
		return jsonResource(inventoryURI, warehouses)
	}
}

func handleJournalResource(svc *application.AllocationService, projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := svc.Journal(projectPath)
		if err != nil {
			return nil, err
		}
		return jsonResource(journalURI, entries)
	}
}

func jsonResource(uri string, v interface{}) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
