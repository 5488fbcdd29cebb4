package domain

import "fmt"

// Order is the set of items requested in one allocation, in the order the
// caller wants them checked.
type Order struct {
	ItemLedger
}

// NewOrder builds an order from lines in the given order.
func NewOrder(lines ...ItemQuantity) Order {
	return Order{ItemLedger: *NewItemLedger(lines...)}
}

// Lines returns the requested items in caller order.
func (o Order) Lines() []ItemQuantity {
	return o.Items()
}

// Validate rejects empty item names and negative quantities.
func (o Order) Validate() error {
	for _, line := range o.Lines() {
		if line.Item == "" {
			return fmt.Errorf("order item: %w", ErrEmptyName)
		}
		if line.Quantity < 0 {
			return fmt.Errorf("order item %q (%d): %w", line.Item, line.Quantity, ErrNegativeQuantity)
		}
	}
	return nil
}
