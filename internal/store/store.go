// Package store holds the in-memory activity hierarchy: an insertion-ordered
// mapping of unique activity names to records. It is the single owner of all
// records for the lifetime of the process; mutation operations in the budget
// package work against it.
package store

import (
	"fmt"

	"github.com/alexanderramin/hebdo/internal/domain"
)

// Store maps activity names to records, preserving insertion order for
// display. Not safe for concurrent use; the event loop owns it exclusively.
type Store struct {
	records map[string]*domain.Activity
	order   []string
}

// New creates an empty Store.
func New() *Store {
	return &Store{records: make(map[string]*domain.Activity)}
}

// Get returns the record with the given name, or ErrNotFound.
func (s *Store) Get(name string) (*domain.Activity, error) {
	a, ok := s.records[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, domain.ErrNotFound)
	}
	return a, nil
}

// Put inserts or overwrites the record keyed by a.Name. An overwrite keeps
// the name's original position in the insertion order.
func (s *Store) Put(a *domain.Activity) {
	if _, ok := s.records[a.Name]; !ok {
		s.order = append(s.order, a.Name)
	}
	s.records[a.Name] = a
}

// Remove deletes the record with the given name. Reports whether it existed.
func (s *Store) Remove(name string) bool {
	if _, ok := s.records[name]; !ok {
		return false
	}
	delete(s.records, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether a record with the given name exists.
func (s *Store) Contains(name string) bool {
	_, ok := s.records[name]
	return ok
}

// Names returns all record names in insertion order.
func (s *Store) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.order)
}

// Children returns the records whose Parent equals name, in insertion order.
func (s *Store) Children(name string) []*domain.Activity {
	var out []*domain.Activity
	for _, n := range s.order {
		if a := s.records[n]; a.Parent == name {
			out = append(out, a)
		}
	}
	return out
}
