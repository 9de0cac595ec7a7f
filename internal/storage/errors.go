package storage

import "errors"

// Sentinel errors shared by all storage backends. Callers classify with
// errors.Is; the UI layer decides user messaging.
var (
	// ErrTrackerNotFound is returned when an operation references a tracker
	// id with no matching persisted entity.
	ErrTrackerNotFound = errors.New("tracker not found")

	// ErrCategoryNotFound is returned when a category heading cannot be
	// resolved to a persisted category.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrRecordNotFound is returned when no completion record exists for the
	// requested (tracker, day) pair.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDecoding signals a persisted entity missing a required field, i.e.
	// corrupted or partially written state. Never auto-repaired.
	ErrDecoding = errors.New("failed to decode persisted entity")

	// ErrSave signals a failed commit. The store rolls back before returning
	// it, so no partial state is observable afterwards.
	ErrSave = errors.New("failed to save changes")
)
