package domain

import "errors"

var (
	// ErrNotFound indicates a referenced activity name is absent from the store.
	ErrNotFound = errors.New("activity not found")

	// ErrParentNotFound rejects an upsert whose parent name does not exist.
	ErrParentNotFound = errors.New("parent activity does not exist")

	// ErrInvalidNumber indicates non-numeric, non-blank text in an hours field.
	// Blank is treated as zero, not an error.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrCycleDetected rejects a parent assignment that would make an
	// activity its own ancestor.
	ErrCycleDetected = errors.New("cycle in activity hierarchy")

	// ErrDanglingParent indicates a record whose parent is missing from the
	// store at projection time. Non-fatal: the projection carries whatever
	// resolved.
	ErrDanglingParent = errors.New("could not find the parent activity")
)
