package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/stockroute/stockroute/internal/adapters/outbound/dataset"
	"github.com/stockroute/stockroute/internal/application"
	"github.com/stockroute/stockroute/internal/domain"
)

// registerTools registers all stockroute MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.AllocationService, projectPath string) {
	// 1. stockroute_allocate
	s.AddTool(
		mcplib.NewTool("stockroute_allocate",
			mcplib.WithDescription("Allocate an order across warehouses in priority order and decrement stock. Returns shipments and, when the order cannot be filled, the first short item."),
			mcplib.WithString("order",
				mcplib.Required(),
				mcplib.Description(`Order as a JSON object of item to quantity, e.g. {"apple": 5, "banana": 2}`),
			),
		),
		handleAllocate(svc, projectPath),
	)

	// 2. stockroute_restock
	s.AddTool(
		mcplib.NewTool("stockroute_restock",
			mcplib.WithDescription("Merge warehouse stock into the saved inventory. Known warehouses are restocked, new ones appended."),
			mcplib.WithString("inventory",
				mcplib.Required(),
				mcplib.Description(`JSON array of warehouses, e.g. [{"name": "east", "inventory": {"apple": 5}}]`),
			),
		),
		handleRestock(svc, projectPath),
	)

	// 3. stockroute_inventory
	s.AddTool(
		mcplib.NewTool("stockroute_inventory",
			mcplib.WithDescription("Returns saved warehouse stock in priority order"),
		),
		handleInventory(svc, projectPath),
	)
}

func handleAllocate(svc *application.AllocationService, projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("order")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		order, err := dataset.ParseOrder([]byte(raw))
		if err != nil {
			return errorResult(fmt.Sprintf("invalid order: %v", err)), nil
		}

		report, err := svc.Allocate(projectPath, order)
		if err != nil {
			return errorResult(fmt.Sprintf("allocation failed: %v", err)), nil
		}

		return jsonResult(allocateResult{
			Fulfilled: report.Fulfilled(),
			Shipments: report.Shipments,
			Shortfall: report.Shortfall,
		})
	}
}

func handleRestock(svc *application.AllocationService, projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("inventory")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		updates, err := dataset.ParseInventory([]byte(raw))
		if err != nil {
			return errorResult(fmt.Sprintf("invalid inventory: %v", err)), nil
		}

		warehouses, err := svc.Restock(projectPath, updates)
		if err != nil {
			return errorResult(fmt.Sprintf("restock failed: %v", err)), nil
		}
		return jsonResult(warehouses)
	}
}

func handleInventory(svc *application.AllocationService, projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		warehouses, err := svc.Inventory(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(warehouses)
	}
}

// allocateResult is the stockroute_allocate payload.
type allocateResult struct {
	Fulfilled bool              `json:"fulfilled"`
	Shipments domain.Allocation `json:"shipments"`
	Shortfall *domain.Shortfall `json:"shortfall,omitempty"`
}

// jsonResult marshals v as indented JSON and wraps it in a CallToolResult.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error result with the given message.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
