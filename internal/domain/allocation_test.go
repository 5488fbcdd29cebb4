package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stockroute/stockroute/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipment_JSONShape(t *testing.T) {
	var a domain.Allocation
	require.NoError(t, json.Unmarshal([]byte(`[{"warehouse_three":{"orange":1,"apple":3}},{"warehouse_one":{"banana":2}}]`), &a))

	require.Len(t, a, 2)
	assert.Equal(t, "warehouse_three", a[0].Warehouse)
	assert.Equal(t, []domain.ItemQuantity{iq("orange", 1), iq("apple", 3)}, a[0].Items.Items())
	assert.Equal(t, []string{"warehouse_three", "warehouse_one"}, a.Warehouses())
}

func TestShipment_RejectsMultipleKeys(t *testing.T) {
	var s domain.Shipment
	err := json.Unmarshal([]byte(`{"a":{"x":1},"b":{"y":2}}`), &s)
	assert.Error(t, err)
}

func TestAllocation_Totals(t *testing.T) {
	a := domain.Allocation{
		{Warehouse: "warehouse_two", Items: domain.NewItemLedger(iq("apple", 6))},
		{Warehouse: "warehouse_three", Items: domain.NewItemLedger(iq("apple", 3), iq("orange", 1))},
	}
	assert.Equal(t, []domain.ItemQuantity{iq("apple", 9), iq("orange", 1)}, a.Totals().Items())
}

func TestShortfall_String(t *testing.T) {
	s := domain.Shortfall{Item: "orange", Requested: 6, Missing: 2}
	assert.Equal(t, "orange: requested 6, short by 2", s.String())
}

func TestOrder_JSONRoundTripKeepsLineOrder(t *testing.T) {
	var o domain.Order
	require.NoError(t, json.Unmarshal([]byte(`{"pear":1,"apple":2}`), &o))
	assert.Equal(t, []domain.ItemQuantity{iq("pear", 1), iq("apple", 2)}, o.Lines())

	data, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, `{"pear":1,"apple":2}`, string(data))
}
