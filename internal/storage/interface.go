package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/kirastone/trackly/internal/models"
)

// Provider is the persistence contract the rest of the application depends
// on. Implementations must behave as single-writer stores: every operation is
// synchronous and atomic, committing fully or rolling back with no partial
// state visible to subsequent reads. Observers are invoked synchronously
// after a mutation commits, on the goroutine that performed it.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Categories
	GetCategories() ([]models.TrackerCategory, error)
	// AddCategory inserts a category with an empty tracker set. Uniqueness is
	// soft: when a category with the same heading already exists the call is
	// a silent no-op, not an error.
	AddCategory(heading string) error
	// ResolveCategory resolves a heading to the persisted category.
	ResolveCategory(heading string) (models.TrackerCategory, error)

	// Trackers
	AddTracker(tracker models.Tracker, categoryHeading string) error
	// UpdateTracker replaces the tracker's full attribute set and may move it
	// to a different category. A move is a single update, never a duplicate.
	UpdateTracker(tracker models.Tracker, categoryHeading string) error
	PinTracker(id uuid.UUID) error
	// DeleteTracker removes the tracker and cascades to all of its records.
	DeleteTracker(id uuid.UUID) error
	GetTracker(id uuid.UUID) (models.Tracker, error)

	// Records
	GetRecords(trackerID uuid.UUID) ([]models.TrackerRecord, error)
	// AddRecord marks the tracker complete for the day containing date.
	// Idempotent per calendar day.
	AddRecord(trackerID uuid.UUID, date time.Time) error
	// DeleteRecord unmarks the tracker for the day containing date.
	DeleteRecord(trackerID uuid.UUID, date time.Time) error
	CompletedCount() (int, error)
	GetStats() (Stats, error)

	// Change notification
	SubscribeTrackers(fn func(TrackerUpdate))
	SubscribeCategories(fn func(CategoryUpdate))

	// Utils
	GetConfigPath() string
}
