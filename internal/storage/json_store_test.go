package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kirastone/trackly/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()

	store := NewJSONStore(filepath.Join(t.TempDir(), "trackly.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	return store
}

func TestJSONInitTwiceFails(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.Init(); err == nil {
		t.Error("second Init() should fail")
	}
}

func TestJSONLoadBeforeInit(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "trackly.json"))
	if err := store.Load(); err == nil {
		t.Error("Load() before Init() should fail")
	}
}

func TestJSONPersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trackly.json")

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.AddCategory("Health"); err != nil {
		t.Fatal(err)
	}

	tracker := models.Tracker{
		ID:       uuid.New(),
		Name:     "run",
		Color:    "#FD4C49",
		Emoji:    "🏃",
		Schedule: []models.WeekDay{models.Monday, models.Friday},
		Type:     models.TrackerHabit,
	}
	if err := store.AddTracker(tracker, "Health"); err != nil {
		t.Fatal(err)
	}
	if err := store.AddRecord(tracker.ID, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	got, err := reopened.GetTracker(tracker.ID)
	if err != nil {
		t.Fatalf("GetTracker after reload failed: %v", err)
	}
	if got.Name != "run" || len(got.Schedule) != 2 {
		t.Errorf("got %+v", got)
	}

	records, err := reopened.GetRecords(tracker.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Day != "2024-01-01" {
		t.Errorf("records = %v", records)
	}
}

func TestJSONSoftCategoryUniqueness(t *testing.T) {
	store := newTestJSONStore(t)

	if err := store.AddCategory("Health"); err != nil {
		t.Fatal(err)
	}
	if err := store.AddCategory("Health"); err != nil {
		t.Fatalf("duplicate AddCategory should be a no-op, got %v", err)
	}

	categories, err := store.GetCategories()
	if err != nil {
		t.Fatal(err)
	}
	if len(categories) != 1 {
		t.Errorf("got %d categories, want 1", len(categories))
	}
}

func TestJSONDeleteTrackerCascades(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.AddCategory("Health"); err != nil {
		t.Fatal(err)
	}

	tracker := models.Tracker{ID: uuid.New(), Name: "run", Type: models.TrackerHabit, Schedule: []models.WeekDay{models.Monday}}
	if err := store.AddTracker(tracker, "Health"); err != nil {
		t.Fatal(err)
	}
	if err := store.AddRecord(tracker.ID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}

	if err := store.DeleteTracker(tracker.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := store.GetTracker(tracker.ID); !errors.Is(err, ErrTrackerNotFound) {
		t.Errorf("err = %v, want ErrTrackerNotFound", err)
	}
	count, err := store.CompletedCount()
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("CompletedCount = %d, want 0", count)
	}
}

func TestJSONAddRecordIdempotent(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.AddCategory("Health"); err != nil {
		t.Fatal(err)
	}

	tracker := models.Tracker{ID: uuid.New(), Name: "run", Type: models.TrackerHabit, Schedule: []models.WeekDay{models.Monday}}
	if err := store.AddTracker(tracker, "Health"); err != nil {
		t.Fatal(err)
	}

	when := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	if err := store.AddRecord(tracker.ID, when); err != nil {
		t.Fatal(err)
	}
	if err := store.AddRecord(tracker.ID, when.Add(8*time.Hour)); err != nil {
		t.Fatal(err)
	}

	count, err := store.CompletedCount()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("CompletedCount = %d, want 1", count)
	}
}

func TestJSONAddTrackerNotifiesObservers(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.AddCategory("Health"); err != nil {
		t.Fatal(err)
	}

	var updates []TrackerUpdate
	store.SubscribeTrackers(func(u TrackerUpdate) { updates = append(updates, u) })

	tracker := models.Tracker{ID: uuid.New(), Name: "run", Type: models.TrackerHabit, Schedule: []models.WeekDay{models.Monday}}
	if err := store.AddTracker(tracker, "Health"); err != nil {
		t.Fatal(err)
	}

	if len(updates) != 1 {
		t.Fatalf("got %d updates, want 1", len(updates))
	}
	if len(updates[0].InsertedSections) != 1 || len(updates[0].InsertedIndexPaths) != 1 {
		t.Errorf("update = %+v", updates[0])
	}
}
