package mcp

import (
	"context"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroute/stockroute/internal/adapters/outbound/config"
	"github.com/stockroute/stockroute/internal/adapters/outbound/journal"
	"github.com/stockroute/stockroute/internal/adapters/outbound/state"
	"github.com/stockroute/stockroute/internal/application"
	"github.com/stockroute/stockroute/internal/domain"
	"github.com/stockroute/stockroute/internal/logging"
)

func testService() *application.AllocationService {
	return application.NewAllocationService(state.New(), journal.New(), config.New(), nil, logging.Discard())
}

func TestInventoryResource(t *testing.T) {
	dir := t.TempDir()
	svc := testService()
	_, err := svc.Init(dir, []domain.Warehouse{
		{Name: "north", Inventory: domain.NewItemLedger(domain.ItemQuantity{Item: "kiwi", Quantity: 2})},
	}, false)
	require.NoError(t, err)

	contents, err := handleInventoryResource(svc, dir)(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, inventoryURI, text.URI)
	assert.Equal(t, "application/json", text.MIMEType)
	assert.JSONEq(t, `[{"name":"north","inventory":{"kiwi":2}}]`, text.Text)
}

func TestInventoryResource_NotInitialized(t *testing.T) {
	_, err := handleInventoryResource(testService(), t.TempDir())(context.Background(), mcplib.ReadResourceRequest{})
	assert.ErrorIs(t, err, application.ErrNotInitialized)
}

func TestJournalResource(t *testing.T) {
	dir := t.TempDir()
	svc := testService()
	_, err := svc.Init(dir, []domain.Warehouse{
		{Name: "north", Inventory: domain.NewItemLedger(domain.ItemQuantity{Item: "kiwi", Quantity: 2})},
	}, false)
	require.NoError(t, err)
	_, err = svc.Allocate(dir, domain.NewOrder(domain.ItemQuantity{Item: "kiwi", Quantity: 1}))
	require.NoError(t, err)

	contents, err := handleJournalResource(svc, dir)(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text := contents[0].(mcplib.TextResourceContents)
	assert.Equal(t, journalURI, text.URI)
	assert.Contains(t, text.Text, `"operation": "seed"`)
	assert.Contains(t, text.Text, `"operation": "allocate"`)
	assert.Contains(t, text.Text, `"north"`)
}
