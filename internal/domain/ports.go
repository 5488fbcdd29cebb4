package domain

// ConfigLoader reads project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// StateStore persists warehouse state between process runs.
type StateStore interface {
	// Load returns (nil, nil) when no state has been saved yet.
	Load(projectPath string) ([]Warehouse, error)
	Save(projectPath string, warehouses []Warehouse) error
	Reset(projectPath string) error
}

// Journal records every operation applied to a project's inventory.
type Journal interface {
	// Append stores entry with the next sequence number and returns it as stored.
	Append(projectPath string, entry JournalEntry) (JournalEntry, error)
	// Load returns entries oldest first, limited to ops when any are given.
	Load(projectPath string, ops ...Operation) ([]JournalEntry, error)
}

// RevisionReader identifies the version of the data directory, if any.
type RevisionReader interface {
	CommitHash(projectPath string) (string, error)
}
