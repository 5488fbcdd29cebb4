package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/stockroute/stockroute/internal/domain"
)

// Store is a file-based implementation of domain.StateStore.
type Store struct{}

// New creates a new file-based state store.
func New() *Store {
	return &Store{}
}

// Load reads the saved warehouses in priority order. Returns (nil, nil) if no state exists.
func (s *Store) Load(projectPath string) ([]domain.Warehouse, error) {
	data, err := os.ReadFile(statePath(projectPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // no state is not an error
		}
		return nil, err
	}

	var warehouses []domain.Warehouse
	if err := json.Unmarshal(data, &warehouses); err != nil {
		return nil, err
	}
	if warehouses == nil {
		warehouses = []domain.Warehouse{}
	}
	return warehouses, nil
}

// Save writes the warehouses to disk, creating directories as needed.
// The file is replaced through a rename so a crash never leaves half a snapshot.
func (s *Store) Save(projectPath string, warehouses []domain.Warehouse) error {
	if err := os.MkdirAll(stateDir(projectPath), 0755); err != nil {
		return err
	}

	if warehouses == nil {
		warehouses = []domain.Warehouse{}
	}
	data, err := json.MarshalIndent(warehouses, "", "  ")
	if err != nil {
		return err
	}

	tmp := statePath(projectPath) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, statePath(projectPath))
}

// Reset removes the saved state for the given project path.
func (s *Store) Reset(projectPath string) error {
	if err := os.Remove(statePath(projectPath)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func stateDir(projectPath string) string {
	return filepath.Join(projectPath, ".stockroute", "state")
}

func statePath(projectPath string) string {
	return filepath.Join(stateDir(projectPath), "inventory.json")
}
