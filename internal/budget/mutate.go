package budget

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/hebdo/internal/domain"
	"github.com/alexanderramin/hebdo/internal/store"
	"github.com/google/uuid"
)

// UpsertInput carries the raw form fields for creating or editing an
// activity. OldName is empty when creating; hours fields are free text where
// blank means zero.
type UpsertInput struct {
	OldName     string
	NewName     string
	HoursPerDay string
	DaysPerWeek string
	Parent      string
}

// Upsert creates or edits an activity. All validation happens before any
// store mutation, so a failed upsert leaves the store untouched:
//
//   - NewName must be non-empty.
//   - Hours fields must parse as numbers (blank = 0) or ErrInvalidNumber.
//   - A non-empty Parent must name an existing record or ErrParentNotFound.
//   - The Parent may not be the activity itself or any of its descendants,
//     or ErrCycleDetected.
//
// On success the named parent loses its own hours (demoted to aggregator),
// and a rename repoints every child of OldName to NewName, so no record is
// ever orphaned by renaming. An activity that still has children after the
// write keeps aggregator status regardless of the hours fields, which only
// renaming through the edit form relies on.
func Upsert(s *store.Store, in UpsertInput) error {
	name := strings.TrimSpace(in.NewName)
	if name == "" {
		return fmt.Errorf("activity name is required")
	}

	hpd, err := parseHours(in.HoursPerDay)
	if err != nil {
		return fmt.Errorf("hours per day: %w", err)
	}
	dpw, err := parseHours(in.DaysPerWeek)
	if err != nil {
		return fmt.Errorf("days per week: %w", err)
	}

	var old *domain.Activity
	if in.OldName != "" {
		if old, err = s.Get(in.OldName); err != nil {
			return err
		}
	}

	parent := strings.TrimSpace(in.Parent)
	if parent != "" {
		if !s.Contains(parent) {
			return fmt.Errorf("%q: %w", parent, domain.ErrParentNotFound)
		}
		if err := checkNoCycle(s, parent, name, in.OldName); err != nil {
			return err
		}
	}

	// Validation done; mutations from here on.
	if parent != "" {
		p, _ := s.Get(parent)
		p.Demote()
	}

	a := &domain.Activity{
		Name:        name,
		HoursPerDay: domain.Float64Ptr(hpd),
		DaysPerWeek: domain.Float64Ptr(dpw),
		Parent:      parent,
	}
	switch {
	case old != nil:
		a.ID = old.ID
	case s.Contains(name):
		prev, _ := s.Get(name)
		a.ID = prev.ID
	default:
		a.ID = uuid.New().String()
	}

	if old != nil && in.OldName != name {
		for _, child := range s.Children(in.OldName) {
			child.Parent = name
		}
		s.Remove(in.OldName)
	}
	s.Put(a)

	// A record with children is always an aggregator; this covers renaming a
	// parent activity, whose edit form offers no hours fields.
	if IsParent(s, name) {
		a.Demote()
	}
	return nil
}

// checkNoCycle walks the ancestor chain starting at parent and fails if it
// reaches the activity being written (under either of its names).
func checkNoCycle(s *store.Store, parent, newName, oldName string) error {
	seen := make(map[string]bool)
	for cur := parent; cur != ""; {
		if cur == newName || (oldName != "" && cur == oldName) {
			return fmt.Errorf("%q cannot be a descendant of %q: %w", parent, newName, domain.ErrCycleDetected)
		}
		if seen[cur] {
			// Pre-existing loop above the insertion point (hand-edited file).
			return fmt.Errorf("%q: %w", cur, domain.ErrCycleDetected)
		}
		seen[cur] = true
		a, err := s.Get(cur)
		if err != nil {
			break // dangling ancestor; surfaced at projection time
		}
		cur = a.Parent
	}
	return nil
}

// Delete removes exactly one record. Activities with children must go
// through DeleteSubtree instead; callers branch on IsParent.
func Delete(s *store.Store, name string) error {
	if !s.Remove(name) {
		return fmt.Errorf("%q: %w", name, domain.ErrNotFound)
	}
	return nil
}

// DeleteSubtree removes the named record and every descendant, depth-first.
func DeleteSubtree(s *store.Store, name string) error {
	if !s.Contains(name) {
		return fmt.Errorf("%q: %w", name, domain.ErrNotFound)
	}
	deleteSubtree(s, name)
	return nil
}

func deleteSubtree(s *store.Store, name string) {
	s.Remove(name)
	for _, child := range s.Children(name) {
		deleteSubtree(s, child.Name)
	}
}

// IsParent reports whether any record names the given activity as its parent.
func IsParent(s *store.Store, name string) bool {
	return len(s.Children(name)) > 0
}

// parseHours parses a free-text hours field. Blank means zero.
func parseHours(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", text, domain.ErrInvalidNumber)
	}
	return v, nil
}
