package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// ItemQuantity pairs an item name with a count.
type ItemQuantity struct {
	Item     string `json:"item"     yaml:"item"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// ItemLedger maps item names to quantities and remembers the order in which
// items were first set. The zero value is an empty ledger ready to use.
type ItemLedger struct {
	items *orderedmap.OrderedMap[string, int]
}

// NewItemLedger builds a ledger holding pairs in the given order.
// A repeated item keeps its first position and takes the last quantity.
func NewItemLedger(pairs ...ItemQuantity) *ItemLedger {
	l := &ItemLedger{}
	for _, p := range pairs {
		l.Set(p.Item, p.Quantity)
	}
	return l
}

func (l *ItemLedger) ensure() {
	if l.items == nil {
		l.items = orderedmap.New[string, int]()
	}
}

// Quantity returns the count held for item and whether the item is present.
func (l *ItemLedger) Quantity(item string) (int, bool) {
	if l == nil || l.items == nil {
		return 0, false
	}
	return l.items.Get(item)
}

// Set stores qty for item. New items are appended; existing ones keep their position.
func (l *ItemLedger) Set(item string, qty int) {
	l.ensure()
	l.items.Set(item, qty)
}

// Add adds qty to item, creating it when absent.
func (l *ItemLedger) Add(item string, qty int) {
	l.ensure()
	cur, _ := l.items.Get(item)
	l.items.Set(item, cur+qty)
}

// Len returns the number of distinct items.
func (l *ItemLedger) Len() int {
	if l == nil || l.items == nil {
		return 0
	}
	return l.items.Len()
}

// Items returns the ledger contents in insertion order.
func (l *ItemLedger) Items() []ItemQuantity {
	if l.Len() == 0 {
		return nil
	}
	out := make([]ItemQuantity, 0, l.items.Len())
	for pair := l.items.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, ItemQuantity{Item: pair.Key, Quantity: pair.Value})
	}
	return out
}

// Total sums every quantity in the ledger.
func (l *ItemLedger) Total() int {
	total := 0
	for _, iq := range l.Items() {
		total += iq.Quantity
	}
	return total
}

// Clone returns an independent copy preserving item order.
func (l *ItemLedger) Clone() *ItemLedger {
	return NewItemLedger(l.Items()...)
}

// MarshalJSON encodes the ledger as a JSON object in insertion order.
func (l ItemLedger) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("{}"), nil
	}
	return l.items.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, keeping the document's key order.
func (l *ItemLedger) UnmarshalJSON(data []byte) error {
	l.items = orderedmap.New[string, int]()
	return l.items.UnmarshalJSON(data)
}

// MarshalYAML encodes the ledger as a YAML mapping in insertion order.
func (l ItemLedger) MarshalYAML() (interface{}, error) {
	if l.items == nil {
		return map[string]int{}, nil
	}
	return l.items.MarshalYAML()
}

// UnmarshalYAML decodes a YAML mapping, keeping the document's key order.
func (l *ItemLedger) UnmarshalYAML(value *yaml.Node) error {
	l.items = orderedmap.New[string, int]()
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null" {
		return nil
	}
	return l.items.UnmarshalYAML(value)
}
