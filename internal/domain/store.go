package domain

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// CommitPolicy controls when allocation decrements reach the store.
type CommitPolicy string

const (
	// CommitImmediate decrements stock while scanning warehouses. A failed
	// order keeps every decrement made before the failing item ran dry,
	// including the partial takes of that item.
	CommitImmediate CommitPolicy = "immediate"
	// CommitAtomic stages decrements and applies them only when the whole
	// order is covered.
	CommitAtomic CommitPolicy = "atomic"
)

// ValidPolicies enumerates all recognized commit policies.
var ValidPolicies = []CommitPolicy{CommitImmediate, CommitAtomic}

// ParseCommitPolicy maps a config value to a policy. Empty means CommitImmediate.
func ParseCommitPolicy(s string) (CommitPolicy, error) {
	if s == "" {
		return CommitImmediate, nil
	}
	for _, p := range ValidPolicies {
		if CommitPolicy(s) == p {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: immediate, atomic)", ErrUnknownPolicy, s)
}

// InventoryStore holds per-warehouse item ledgers. Warehouses are visited in
// first-insertion order, which is their allocation priority.
//
// The store does no locking; callers must serialize Merge and Allocate.
type InventoryStore struct {
	warehouses *orderedmap.OrderedMap[string, *ItemLedger]
	policy     CommitPolicy
}

// NewInventoryStore creates a store seeded from snapshot, merged in order.
func NewInventoryStore(policy CommitPolicy, snapshot ...Warehouse) *InventoryStore {
	if policy == "" {
		policy = CommitImmediate
	}
	s := &InventoryStore{
		warehouses: orderedmap.New[string, *ItemLedger](len(snapshot)),
		policy:     policy,
	}
	s.Merge(snapshot...)
	return s
}

// Policy returns the store's commit policy.
func (s *InventoryStore) Policy() CommitPolicy { return s.policy }

// Merge folds updates into the store in sequence order. An unknown warehouse
// is appended with its ledger, which the store then owns. For a known
// warehouse each item quantity is added to the existing one, or set when the
// item is new to that warehouse.
func (s *InventoryStore) Merge(updates ...Warehouse) {
	for _, u := range updates {
		ledger, known := s.warehouses.Get(u.Name)
		if !known {
			if u.Inventory == nil {
				u.Inventory = &ItemLedger{}
			}
			s.warehouses.Set(u.Name, u.Inventory)
			continue
		}
		for _, iq := range u.Inventory.Items() {
			ledger.Add(iq.Item, iq.Quantity)
		}
	}
}

// Stock returns the quantity of item held by warehouse.
func (s *InventoryStore) Stock(warehouse, item string) (int, bool) {
	ledger, ok := s.warehouses.Get(warehouse)
	if !ok {
		return 0, false
	}
	return ledger.Quantity(item)
}

// Warehouses returns a deep copy of the store in priority order.
func (s *InventoryStore) Warehouses() []Warehouse {
	out := make([]Warehouse, 0, s.warehouses.Len())
	for pair := s.warehouses.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Warehouse{Name: pair.Key, Inventory: pair.Value.Clone()})
	}
	return out
}

// Allocate assigns the order to warehouses and returns the shipments, or an
// empty Allocation when some item cannot be fully covered.
func (s *InventoryStore) Allocate(order Order) Allocation {
	return s.AllocateWithReport(order).Shipments
}

// take is one decrement of a warehouse ledger for one item.
type take struct {
	warehouse string
	ledger    *ItemLedger
	item      string
	qty       int
}

// AllocateWithReport runs the greedy allocation. For each order item it walks
// warehouses in priority order, taking everything a warehouse holds until the
// remainder fits, then the remainder. The first item left uncovered stops the
// allocation and is reported as the shortfall.
func (s *InventoryStore) AllocateWithReport(order Order) AllocationReport {
	var takes []take

	for _, line := range order.Lines() {
		remaining := line.Quantity
		for pair := s.warehouses.Oldest(); pair != nil; pair = pair.Next() {
			stock, ok := pair.Value.Quantity(line.Item)
			if !ok || stock < 1 {
				continue
			}
			// A warehouse that covers the remainder ends the scan, even when
			// the remainder is zero: it still ships a 0 entry for the item.
			qty := min(stock, remaining)
			if s.policy == CommitImmediate {
				pair.Value.Set(line.Item, stock-qty)
			}
			takes = append(takes, take{warehouse: pair.Key, ledger: pair.Value, item: line.Item, qty: qty})
			remaining -= qty
			if remaining == 0 {
				break
			}
		}
		if remaining > 0 {
			return AllocationReport{
				Shipments: Allocation{},
				Shortfall: &Shortfall{Item: line.Item, Requested: line.Quantity, Missing: remaining},
			}
		}
	}

	if s.policy == CommitAtomic {
		for _, t := range takes {
			stock, _ := t.ledger.Quantity(t.item)
			t.ledger.Set(t.item, stock-t.qty)
		}
	}

	return AllocationReport{Shipments: groupByWarehouse(takes)}
}

// groupByWarehouse folds takes into shipments ordered by first use.
func groupByWarehouse(takes []take) Allocation {
	byName := orderedmap.New[string, *ItemLedger]()
	for _, t := range takes {
		items, ok := byName.Get(t.warehouse)
		if !ok {
			items = &ItemLedger{}
			byName.Set(t.warehouse, items)
		}
		items.Add(t.item, t.qty)
	}

	out := make(Allocation, 0, byName.Len())
	for pair := byName.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Shipment{Warehouse: pair.Key, Items: pair.Value})
	}
	return out
}
