package domain

import "fmt"

// Warehouse is a named item ledger. It is the unit the store is seeded and
// restocked with.
type Warehouse struct {
	Name      string      `json:"name"      yaml:"name"`
	Inventory *ItemLedger `json:"inventory" yaml:"inventory"`
}

// Clone returns a deep copy of w.
func (w Warehouse) Clone() Warehouse {
	return Warehouse{Name: w.Name, Inventory: w.Inventory.Clone()}
}

// Validate checks the warehouse name and that no quantity is negative.
func (w Warehouse) Validate() error {
	if w.Name == "" {
		return fmt.Errorf("warehouse: %w", ErrEmptyName)
	}
	for _, iq := range w.Inventory.Items() {
		if iq.Item == "" {
			return fmt.Errorf("warehouse %q: item %w", w.Name, ErrEmptyName)
		}
		if iq.Quantity < 0 {
			return fmt.Errorf("warehouse %q item %q (%d): %w", w.Name, iq.Item, iq.Quantity, ErrNegativeQuantity)
		}
	}
	return nil
}

// ValidateBatch validates every warehouse and rejects a name that appears twice.
func ValidateBatch(warehouses []Warehouse) error {
	seen := make(map[string]bool, len(warehouses))
	for i, w := range warehouses {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if seen[w.Name] {
			return fmt.Errorf("entry %d: %q: %w", i, w.Name, ErrDuplicateWarehouse)
		}
		seen[w.Name] = true
	}
	return nil
}

// CloneWarehouses deep-copies a slice of warehouses.
func CloneWarehouses(warehouses []Warehouse) []Warehouse {
	if warehouses == nil {
		return nil
	}
	out := make([]Warehouse, len(warehouses))
	for i, w := range warehouses {
		out[i] = w.Clone()
	}
	return out
}
