package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stockroute/stockroute/internal/adapters/outbound/tui"
	"github.com/stockroute/stockroute/internal/domain"
)

func sampleReport() domain.AllocationReport {
	return domain.AllocationReport{
		Shipments: domain.Allocation{
			{Warehouse: "warehouse_one", Items: domain.NewItemLedger(domain.ItemQuantity{Item: "apple", Quantity: 5})},
			{Warehouse: "eastDepot", Items: domain.NewItemLedger(
				domain.ItemQuantity{Item: "apple", Quantity: 1},
				domain.ItemQuantity{Item: "banana", Quantity: 3},
			)},
		},
	}
}

func TestRenderAllocation_Fulfilled(t *testing.T) {
	output := tui.RenderAllocation(sampleReport())
	assert.Contains(t, output, "stockroute")
	assert.Contains(t, output, "FULFILLED")
	assert.NotContains(t, output, "NOT FULFILLED")
	assert.Contains(t, output, "Warehouse One")
	assert.Contains(t, output, "East Depot")
	assert.Contains(t, output, "banana")
	assert.Contains(t, output, "9 units from 2 warehouses")
}

func TestRenderAllocation_Shortfall(t *testing.T) {
	report := domain.AllocationReport{
		Shipments: domain.Allocation{},
		Shortfall: &domain.Shortfall{Item: "orange", Requested: 6, Missing: 2},
	}
	output := tui.RenderAllocation(report)
	assert.Contains(t, output, "NOT FULFILLED")
	assert.Contains(t, output, "orange: requested 6, short by 2")
}

func TestRenderAllocation_EmptyOrder(t *testing.T) {
	output := tui.RenderAllocation(domain.AllocationReport{Shipments: domain.Allocation{}})
	assert.Contains(t, output, "Nothing to ship.")
}

func TestRenderInventory(t *testing.T) {
	output := tui.RenderInventory([]domain.Warehouse{
		{Name: "warehouse_one", Inventory: domain.NewItemLedger(domain.ItemQuantity{Item: "apple", Quantity: 4})},
		{Name: "warehouse_two", Inventory: domain.NewItemLedger(domain.ItemQuantity{Item: "apple", Quantity: 0})},
	})
	assert.Contains(t, output, "Inventory")
	assert.Contains(t, output, "1.")
	assert.Contains(t, output, "Warehouse Two")
	assert.Contains(t, output, "4 units")
	assert.Contains(t, output, "0 units")
}

func TestRenderInventory_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderInventory(nil), "No warehouses stocked.")
}

func TestRenderJournal(t *testing.T) {
	order := domain.NewOrder(domain.ItemQuantity{Item: "apple", Quantity: 1})
	output := tui.RenderJournal([]domain.JournalEntry{
		{
			Seq:       1,
			Timestamp: "2026-01-02T10:00:00Z", Revision: "abcdef1234567",
			Operation:  domain.OperationSeed,
			Fulfilled:  true,
			Warehouses: []domain.Warehouse{{Name: "warehouse_one"}},
		},
		{
			Timestamp: "2026-01-02T11:00:00Z",
			Operation: domain.OperationAllocate,
			Order:     &order,
			Fulfilled: true,
			Shipments: sampleReport().Shipments,
		},
		{
			Seq:       12,
			Timestamp: "2026-01-03T09:00:00Z",
			Operation: domain.OperationAllocate,
			Shortfall: &domain.Shortfall{Item: "pear", Requested: 3, Missing: 3},
		},
	})
	assert.Contains(t, output, "#1 ")
	assert.Contains(t, output, "#12")
	assert.Contains(t, output, "2026-01-02")
	assert.Contains(t, output, "abcdef1")
	assert.NotContains(t, output, "abcdef1234567")
	assert.Contains(t, output, "1 warehouses: warehouse_one")
	assert.Contains(t, output, "warehouse_one, eastDepot")
	assert.Contains(t, output, "pear: requested 3, short by 3")
}

func TestRenderJournal_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderJournal(nil), "No journal entries found.")
}

func TestHumanize(t *testing.T) {
	tests := map[string]string{
		"warehouse_one": "Warehouse One",
		"eastDepot":     "East Depot",
		"north-hub":     "North Hub",
		"w":             "W",
		"__":            "__",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, tui.Humanize(in))
		})
	}
}
