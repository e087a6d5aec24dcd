// Package driven defines the interfaces the core depends on.
// Adapters under internal/adapters/driven implement them.
package driven

import "github.com/nullsec-labs/evecrop/internal/core/domain"

// RosterStore persists the character roster. The store is read wholesale at
// startup and rewritten wholesale on save; there is no record-level locking.
type RosterStore interface {
	// Load reads the full roster. A missing backing file yields an empty
	// roster, not an error.
	Load() (domain.Roster, error)

	// Save writes the full roster, replacing previous contents.
	Save(roster domain.Roster) error
}
