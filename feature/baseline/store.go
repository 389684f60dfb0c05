package baseline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Snapshot is the persisted form of the baseline.
type Snapshot struct {
	// SKUs are the known SKUs, sorted.
	SKUs []string `json:"skus"`
	// Updated is the ISO-8601 timestamp of the last successful run.
	Updated string `json:"updated"`
}

// Store persists the baseline as a JSON document on disk.
type Store struct {
	path string
	now  func() time.Time
}

// NewStore creates a store for the given path.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Load reads the baseline. A missing file is a first run and yields an
// empty set; a corrupt file is an error so cross-run state is never
// clobbered by accident.
func (s *Store) Load() (Set, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return NewSet(snap.SKUs...), nil
}

// Snapshot reads the raw persisted document.
func (s *Store) Snapshot() (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline %s: %w", s.path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse baseline %s: %w", s.path, err)
	}

	return &snap, nil
}

// Save writes the set with a fresh timestamp. Callers invoke this only
// after the import file has been written successfully.
func (s *Store) Save(set Set) error {
	snap := Snapshot{
		SKUs:    set.SKUs(),
		Updated: s.now().UTC().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode baseline: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write baseline %s: %w", s.path, err)
	}

	return nil
}
