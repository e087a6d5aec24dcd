// Package file provides the JSON-file-backed roster store.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nullsec-labs/evecrop/internal/core/domain"
	"github.com/nullsec-labs/evecrop/internal/core/ports/driven"
)

// Ensure RosterStore implements the interface.
var _ driven.RosterStore = (*RosterStore)(nil)

// RosterStore persists the character roster as a single JSON object mapping
// character name to record. The file is read whole and rewritten whole;
// concurrent invocations of the tool race on it, which is an accepted
// limitation of a single-operator CLI.
type RosterStore struct {
	path string
}

// NewRosterStore creates a roster store backed by the given file path.
func NewRosterStore(path string) *RosterStore {
	return &RosterStore{path: path}
}

// Load reads the roster file. A missing file yields an empty roster.
func (s *RosterStore) Load() (domain.Roster, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Roster{}, nil
		}
		return nil, fmt.Errorf("read roster %s: %w", s.path, err)
	}

	var roster domain.Roster
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptRoster, s.path, err)
	}
	if roster == nil {
		roster = domain.Roster{}
	}
	return roster, nil
}

// Save writes the full roster, replacing previous contents. Tokens are
// secrets, so the file is written with owner-only permissions.
func (s *RosterStore) Save(roster domain.Roster) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create roster dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(roster, "", "  ")
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write roster %s: %w", s.path, err)
	}
	return nil
}

// Path returns the roster file path.
func (s *RosterStore) Path() string {
	return s.path
}
