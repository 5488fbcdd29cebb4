// Package dataset reads warehouse inventories and orders from YAML or JSON
// files. JSON documents are accepted as YAML flow mappings, so one decoder
// serves both, and mapping key order is kept.
package dataset

import (
	"fmt"
	"os"

	"github.com/stockroute/stockroute/internal/domain"
	"gopkg.in/yaml.v3"
)

// Reader loads inventory and order documents from disk.
type Reader struct{}

// New creates a Reader.
func New() *Reader { return &Reader{} }

// LoadInventory reads a list of {name, inventory} entries.
func (r *Reader) LoadInventory(path string) ([]domain.Warehouse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading inventory: %w", err)
	}
	warehouses, err := ParseInventory(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return warehouses, nil
}

// LoadOrder reads an item -> quantity mapping.
func (r *Reader) LoadOrder(path string) (domain.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Order{}, fmt.Errorf("reading order: %w", err)
	}
	order, err := ParseOrder(data)
	if err != nil {
		return domain.Order{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return order, nil
}

// ParseInventory decodes an inventory document.
func ParseInventory(data []byte) ([]domain.Warehouse, error) {
	var warehouses []domain.Warehouse
	if err := yaml.Unmarshal(data, &warehouses); err != nil {
		return nil, err
	}
	return warehouses, nil
}

// ParseOrder decodes an order document.
func ParseOrder(data []byte) (domain.Order, error) {
	var order domain.Order
	if err := yaml.Unmarshal(data, &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}
