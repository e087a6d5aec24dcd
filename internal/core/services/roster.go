// Package services holds the core application services wiring the domain to
// the driven ports.
package services

import (
	"fmt"
	"sort"

	"github.com/nullsec-labs/evecrop/internal/core/domain"
	"github.com/nullsec-labs/evecrop/internal/core/ports/driven"
)

// RosterService reads and mutates the character roster.
type RosterService struct {
	store driven.RosterStore
}

// NewRosterService creates a roster service over the given store.
func NewRosterService(store driven.RosterStore) *RosterService {
	return &RosterService{store: store}
}

// List returns all records sorted by character name.
func (s *RosterService) List() ([]domain.CharacterRecord, error) {
	roster, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	records := make([]domain.CharacterRecord, 0, len(roster))
	for _, rec := range roster {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records, nil
}

// Find looks up a record by exact name, falling back to prefix match.
func (s *RosterService) Find(name string) (*domain.CharacterRecord, error) {
	roster, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	rec := roster.Find(name)
	if rec == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotFound, name)
	}
	return rec, nil
}

// Upsert inserts or replaces a record and persists the roster immediately.
func (s *RosterService) Upsert(rec domain.CharacterRecord) error {
	roster, err := s.store.Load()
	if err != nil {
		return err
	}
	roster[rec.Name] = rec
	return s.store.Save(roster)
}
