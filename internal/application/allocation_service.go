package application

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/stockroute/stockroute/internal/domain"
)

// AllocationService runs restock and allocation requests against a project's
// saved inventory. Each call rebuilds an InventoryStore from the state
// snapshot, applies one core operation, saves the result and journals it.
// Calls are serialized, so concurrent callers never interleave a
// load-mutate-save cycle.
type AllocationService struct {
	state    domain.StateStore
	journal  domain.Journal
	config   domain.ConfigLoader
	revision domain.RevisionReader
	log      zerolog.Logger

	mu  sync.Mutex
	now func() time.Time
}

// NewAllocationService creates a new AllocationService with all required dependencies.
func NewAllocationService(
	state domain.StateStore,
	journal domain.Journal,
	config domain.ConfigLoader,
	revision domain.RevisionReader,
	log zerolog.Logger,
) *AllocationService {
	return &AllocationService{
		state: state, journal: journal, config: config, revision: revision,
		log: log, now: time.Now,
	}
}

// ErrAlreadyInitialized is returned by Init when state exists and force is off.
var ErrAlreadyInitialized = errors.New("inventory state already exists")

// Init seeds the project's state with warehouses, replacing existing state
// only when force is set.
func (s *AllocationService) Init(projectPath string, seed []domain.Warehouse, force bool) ([]domain.Warehouse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.loadConfig(projectPath)
	if err != nil {
		return nil, err
	}

	existing, err := s.state.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}
	if existing != nil && !force {
		return nil, fmt.Errorf("%w (use --force to replace it)", ErrAlreadyInitialized)
	}

	if cfg.IsStrict() {
		if err := domain.ValidateBatch(seed); err != nil {
			return nil, fmt.Errorf("invalid inventory: %w", err)
		}
	}

	if existing != nil {
		if err := s.state.Reset(projectPath); err != nil {
			return nil, fmt.Errorf("resetting state: %w", err)
		}
		s.log.Debug().Int("warehouses", len(existing)).Msg("previous state discarded")
	}

	store := domain.NewInventoryStore(cfg.Policy(), domain.CloneWarehouses(seed)...)
	warehouses := store.Warehouses()
	if err := s.state.Save(projectPath, warehouses); err != nil {
		return nil, fmt.Errorf("saving state: %w", err)
	}

	s.record(projectPath, domain.JournalEntry{
		Operation:  domain.OperationSeed,
		Policy:     cfg.Policy(),
		Fulfilled:  true,
		Warehouses: domain.CloneWarehouses(seed),
	})
	s.log.Info().Str("op", "seed").Int("warehouses", len(warehouses)).Msg("inventory seeded")

	return warehouses, nil
}

// Restock merges updates into the saved inventory and returns the new state.
func (s *AllocationService) Restock(projectPath string, updates []domain.Warehouse) ([]domain.Warehouse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, store, err := s.open(projectPath)
	if err != nil {
		return nil, err
	}

	if cfg.IsStrict() {
		if err := domain.ValidateBatch(updates); err != nil {
			return nil, fmt.Errorf("invalid restock: %w", err)
		}
	}

	store.Merge(domain.CloneWarehouses(updates)...)
	warehouses := store.Warehouses()
	if err := s.state.Save(projectPath, warehouses); err != nil {
		return nil, fmt.Errorf("saving state: %w", err)
	}

	s.record(projectPath, domain.JournalEntry{
		Operation:  domain.OperationRestock,
		Policy:     cfg.Policy(),
		Fulfilled:  true,
		Warehouses: domain.CloneWarehouses(updates),
	})
	s.log.Info().Str("op", "restock").Int("updates", len(updates)).Int("warehouses", len(warehouses)).Msg("inventory restocked")

	return warehouses, nil
}

// Allocate runs order against the saved inventory. The state is saved even
// when the order fails, since under the immediate policy the store has
// already been decremented.
func (s *AllocationService) Allocate(projectPath string, order domain.Order) (*domain.AllocationReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, store, err := s.open(projectPath)
	if err != nil {
		return nil, err
	}

	if cfg.IsStrict() {
		if err := order.Validate(); err != nil {
			return nil, fmt.Errorf("invalid order: %w", err)
		}
	}

	report := store.AllocateWithReport(order)
	if err := s.state.Save(projectPath, store.Warehouses()); err != nil {
		return nil, fmt.Errorf("saving state: %w", err)
	}

	entry := domain.JournalEntry{
		Operation: domain.OperationAllocate,
		Policy:    cfg.Policy(),
		Order:     &order,
		Shipments: report.Shipments,
		Fulfilled: report.Fulfilled(),
		Shortfall: report.Shortfall,
	}
	s.record(projectPath, entry)

	ev := s.log.Info()
	if !report.Fulfilled() {
		ev = s.log.Warn().Str("shortfall", report.Shortfall.String())
	}
	ev.Str("op", "allocate").
		Str("policy", string(cfg.Policy())).
		Int("items", order.Len()).
		Strs("warehouses", report.Shipments.Warehouses()).
		Bool("fulfilled", report.Fulfilled()).
		Msg("order allocated")

	return &report, nil
}

// Inventory returns the saved warehouses in priority order.
func (s *AllocationService) Inventory(projectPath string) ([]domain.Warehouse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, store, err := s.open(projectPath)
	if err != nil {
		return nil, err
	}
	return store.Warehouses(), nil
}

// Journal returns journaled operations oldest first, limited to ops when
// any are given.
func (s *AllocationService) Journal(projectPath string, ops ...domain.Operation) ([]domain.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.journal.Load(projectPath, ops...)
	if err != nil {
		return nil, fmt.Errorf("loading journal: %w", err)
	}
	return entries, nil
}

// ErrNotInitialized is returned when a project has no saved inventory.
var ErrNotInitialized = errors.New("no inventory state found (run `stockroute init` first)")

// open loads config and rebuilds the store from the saved snapshot.
func (s *AllocationService) open(projectPath string) (domain.ProjectConfig, *domain.InventoryStore, error) {
	cfg, err := s.loadConfig(projectPath)
	if err != nil {
		return domain.ProjectConfig{}, nil, err
	}

	warehouses, err := s.state.Load(projectPath)
	if err != nil {
		return domain.ProjectConfig{}, nil, fmt.Errorf("loading state: %w", err)
	}
	if warehouses == nil {
		return domain.ProjectConfig{}, nil, ErrNotInitialized
	}

	s.log.Debug().Int("warehouses", len(warehouses)).Str("policy", string(cfg.Policy())).Msg("state loaded")
	return cfg, domain.NewInventoryStore(cfg.Policy(), warehouses...), nil
}

func (s *AllocationService) loadConfig(projectPath string) (domain.ProjectConfig, error) {
	cfg, err := s.config.Load(projectPath)
	if err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// record appends entry to the journal, stamped with time and data revision.
// Journal failures are logged, not returned: the inventory change is already saved.
func (s *AllocationService) record(projectPath string, entry domain.JournalEntry) {
	entry.Timestamp = s.now().UTC().Format(time.RFC3339)
	if s.revision != nil {
		if hash, err := s.revision.CommitHash(projectPath); err == nil {
			entry.Revision = hash
		}
	}
	stored, err := s.journal.Append(projectPath, entry)
	if err != nil {
		s.log.Error().Err(err).Str("op", string(entry.Operation)).Msg("journal append failed")
		return
	}
	s.log.Debug().Int("seq", stored.Seq).Str("op", string(stored.Operation)).Msg("journaled")
}

// ResolveInventoryFile returns the seed file to use for init: the explicit
// argument if given, else the configured inventory_file relative to projectPath.
func ResolveInventoryFile(projectPath, explicit string, cfg domain.ProjectConfig) (string, error) {
	path := explicit
	if path == "" {
		path = cfg.InventoryFile
	}
	if path == "" {
		return "", fmt.Errorf("no inventory file given and inventory_file is not set in config")
	}
	if !filepath.IsAbs(path) && explicit == "" {
		path = filepath.Join(projectPath, path)
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("inventory file: %w", err)
	}
	return path, nil
}
