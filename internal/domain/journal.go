package domain

import (
	"fmt"
	"slices"
)

// Operation names a journaled inventory operation.
type Operation string

const (
	OperationSeed     Operation = "seed"
	OperationRestock  Operation = "restock"
	OperationAllocate Operation = "allocate"
)

// ValidOperations enumerates all journaled operations.
var ValidOperations = []Operation{OperationSeed, OperationRestock, OperationAllocate}

// ParseOperations maps names such as "allocate" to operations.
func ParseOperations(names []string) ([]Operation, error) {
	ops := make([]Operation, 0, len(names))
	for _, name := range names {
		op := Operation(name)
		if !slices.Contains(ValidOperations, op) {
			return nil, fmt.Errorf("%w %q (valid: seed, restock, allocate)", ErrUnknownOperation, name)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// JournalEntry is one record in a project's operation journal. Seq is
// assigned by the journal on append and starts at 1.
type JournalEntry struct {
	Seq        int          `json:"seq"`
	Timestamp  string       `json:"timestamp"`
	Revision   string       `json:"revision,omitempty"`
	Operation  Operation    `json:"operation"`
	Policy     CommitPolicy `json:"policy,omitempty"`
	Order      *Order       `json:"order,omitempty"`
	Shipments  Allocation   `json:"shipments,omitempty"`
	Fulfilled  bool         `json:"fulfilled"`
	Shortfall  *Shortfall   `json:"shortfall,omitempty"`
	Warehouses []Warehouse  `json:"warehouses,omitempty"`
}

// FilterJournal keeps the entries whose operation is one of ops. No ops
// keeps everything.
func FilterJournal(entries []JournalEntry, ops ...Operation) []JournalEntry {
	if len(ops) == 0 {
		return entries
	}
	var out []JournalEntry
	for _, e := range entries {
		if slices.Contains(ops, e.Operation) {
			out = append(out, e)
		}
	}
	return out
}
