package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Shipment is the part of an allocation sourced from one warehouse.
type Shipment struct {
	Warehouse string
	Items     *ItemLedger
}

// MarshalJSON encodes the shipment as a single-key object: {"warehouse": {"item": qty}}.
func (s Shipment) MarshalJSON() ([]byte, error) {
	name, err := json.Marshal(s.Warehouse)
	if err != nil {
		return nil, err
	}
	items, err := json.Marshal(s.Items)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write(name)
	buf.WriteByte(':')
	buf.Write(items)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the single-key object form written by MarshalJSON.
func (s *Shipment) UnmarshalJSON(data []byte) error {
	om := orderedmap.New[string, *ItemLedger]()
	if err := om.UnmarshalJSON(data); err != nil {
		return err
	}
	if om.Len() != 1 {
		return fmt.Errorf("shipment must have exactly one warehouse key, got %d", om.Len())
	}
	pair := om.Oldest()
	s.Warehouse = pair.Key
	s.Items = pair.Value
	if s.Items == nil {
		s.Items = &ItemLedger{}
	}
	return nil
}

// Allocation lists shipments in the order their warehouses were first used.
// An empty allocation means the order could not be fulfilled.
type Allocation []Shipment

// Totals sums the allocated quantity per item, in first-seen order.
func (a Allocation) Totals() *ItemLedger {
	totals := &ItemLedger{}
	for _, s := range a {
		for _, iq := range s.Items.Items() {
			totals.Add(iq.Item, iq.Quantity)
		}
	}
	return totals
}

// Warehouses returns the warehouse names in shipment order.
func (a Allocation) Warehouses() []string {
	names := make([]string, 0, len(a))
	for _, s := range a {
		names = append(names, s.Warehouse)
	}
	return names
}

// Shortfall describes the first order item that could not be covered.
type Shortfall struct {
	Item      string `json:"item"`
	Requested int    `json:"requested"`
	Missing   int    `json:"missing"`
}

func (s Shortfall) String() string {
	return fmt.Sprintf("%s: requested %d, short by %d", s.Item, s.Requested, s.Missing)
}

// AllocationReport is the outcome of one allocation attempt.
type AllocationReport struct {
	Shipments Allocation `json:"shipments"`
	Shortfall *Shortfall `json:"shortfall,omitempty"`
}

// Fulfilled reports whether every order line was covered.
func (r AllocationReport) Fulfilled() bool { return r.Shortfall == nil }
