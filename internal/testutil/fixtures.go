// Package testutil provides fixtures for building activity stores in tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/alexanderramin/hebdo/internal/domain"
	"github.com/alexanderramin/hebdo/internal/store"
	"github.com/google/uuid"
)

// Leaf builds a leaf activity record with its own hours.
func Leaf(name string, hpd, dpw float64, parent string) *domain.Activity {
	return &domain.Activity{
		ID:          uuid.New().String(),
		Name:        name,
		HoursPerDay: domain.Float64Ptr(hpd),
		DaysPerWeek: domain.Float64Ptr(dpw),
		Parent:      parent,
	}
}

// Aggregator builds a parent activity record without own hours.
func Aggregator(name, parent string) *domain.Activity {
	return &domain.Activity{
		ID:     uuid.New().String(),
		Name:   name,
		Parent: parent,
	}
}

// SeedStore builds a store containing the given records in order.
func SeedStore(activities ...*domain.Activity) *store.Store {
	s := store.New()
	for _, a := range activities {
		s.Put(a)
	}
	return s
}

// TempHoursFile returns a path for a saved-hours file inside a per-test
// temporary directory. The file does not exist yet.
func TempHoursFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "hours.yaml")
}
