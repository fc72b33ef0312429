package budget

import (
	"fmt"

	"github.com/alexanderramin/hebdo/internal/domain"
	"github.com/alexanderramin/hebdo/internal/persist"
	"github.com/alexanderramin/hebdo/internal/store"
)

// Service owns the activity store and its persistence file, and exposes the
// operations the presentation layer consumes. Mutations mark the service
// dirty until the next successful Save.
type Service struct {
	store *store.Store
	file  *persist.File
	dirty bool
}

// NewService creates a Service over an already-loaded store.
func NewService(s *store.Store, f *persist.File) *Service {
	return &Service{store: s, file: f}
}

// Tree builds the display projection. A non-nil error alongside a non-nil
// tree is a warning (dangling parents); the tree carries what resolved.
func (svc *Service) Tree() (*Tree, error) {
	return BuildTree(svc.store)
}

// Available returns the remaining hours in a 168-hour week.
func (svc *Service) Available() float64 {
	return Available(svc.store)
}

// Effective computes the effective hours for a single activity.
func (svc *Service) Effective(name string) (Hours, error) {
	return Effective(svc.store, name)
}

// Get returns the named record.
func (svc *Service) Get(name string) (*domain.Activity, error) {
	return svc.store.Get(name)
}

// Len returns the number of activities.
func (svc *Service) Len() int {
	return svc.store.Len()
}

// IsParent reports whether the named activity has children.
func (svc *Service) IsParent(name string) bool {
	return IsParent(svc.store, name)
}

// Upsert creates or edits an activity. See the package-level Upsert for the
// validation and rename semantics.
func (svc *Service) Upsert(in UpsertInput) error {
	if err := Upsert(svc.store, in); err != nil {
		return err
	}
	svc.dirty = true
	return nil
}

// Delete removes a single childless activity.
func (svc *Service) Delete(name string) error {
	if err := Delete(svc.store, name); err != nil {
		return err
	}
	svc.dirty = true
	return nil
}

// DeleteSubtree removes an activity and all of its descendants.
func (svc *Service) DeleteSubtree(name string) error {
	if err := DeleteSubtree(svc.store, name); err != nil {
		return err
	}
	svc.dirty = true
	return nil
}

// Save writes the store to the persistence file and clears the dirty flag.
func (svc *Service) Save() error {
	if err := svc.file.Save(svc.store); err != nil {
		return fmt.Errorf("saving hours: %w", err)
	}
	svc.dirty = false
	return nil
}

// Dirty reports whether there are unsaved changes.
func (svc *Service) Dirty() bool {
	return svc.dirty
}
