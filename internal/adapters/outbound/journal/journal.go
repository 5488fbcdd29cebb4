package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stockroute/stockroute/internal/domain"
)

const journalFile = ".stockroute/journal/entries.json"

// FileJournal implements domain.Journal as one JSON array per project.
// Entries are numbered in append order; numbers are never reused.
type FileJournal struct{}

func New() *FileJournal {
	return &FileJournal{}
}

// Append numbers entry after the last stored one and rewrites the file
// through a rename.
func (j *FileJournal) Append(projectPath string, entry domain.JournalEntry) (domain.JournalEntry, error) {
	entries, err := j.Load(projectPath)
	if err != nil {
		return domain.JournalEntry{}, err
	}

	entry.Seq = 1
	if n := len(entries); n > 0 {
		entry.Seq = entries[n-1].Seq + 1
	}
	entries = append(entries, entry)

	fp := filepath.Join(projectPath, journalFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return domain.JournalEntry{}, err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("encoding journal entry %d: %w", entry.Seq, err)
	}

	tmp := fp + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return domain.JournalEntry{}, err
	}
	if err := os.Rename(tmp, fp); err != nil {
		return domain.JournalEntry{}, err
	}
	return entry, nil
}

// Load returns the stored entries oldest first, keeping only ops when given.
func (j *FileJournal) Load(projectPath string, ops ...domain.Operation) ([]domain.JournalEntry, error) {
	fp := filepath.Join(projectPath, journalFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.JournalEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", journalFile, err)
	}

	return domain.FilterJournal(entries, ops...), nil
}
