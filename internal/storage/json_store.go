package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kirastone/trackly/internal/models"
)

// jsonTracker is the persisted tracker shape. The schedule is stored as the
// encoded bitmask, same as the SQLite layout.
type jsonTracker struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Emoji    string `json:"emoji"`
	Schedule int16  `json:"schedule_mask"`
	Type     string `json:"type"`
	IsPinned bool   `json:"is_pinned"`
	Category string `json:"category"`
}

type jsonData struct {
	Version    int                    `json:"version"`
	Categories []string               `json:"categories"`
	Trackers   []jsonTracker          `json:"trackers"` // insertion order preserved
	Records    []models.TrackerRecord `json:"records"`
}

// JSONStore is a plain-file Provider used when the config path ends in
// ".json". Same single-writer discipline as the SQLite store.
type JSONStore struct {
	Observers

	path  string
	mu    sync.Mutex
	store *jsonData
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &jsonData{Version: 1}
	return s.save()
}

func (s *JSONStore) Load() error {
	if s.store != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'trackly init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &jsonData{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("%w: %v", ErrDecoding, err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}

	return nil
}

// revert reloads the on-disk state after a failed save so no partial mutation
// stays observable.
func (s *JSONStore) revert() {
	s.store = nil
	_ = s.Load()
}

func (s *JSONStore) loaded() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) categoriesLocked() []models.TrackerCategory {
	headings := append([]string(nil), s.store.Categories...)
	sort.Strings(headings)

	categories := make([]models.TrackerCategory, 0, len(headings))
	for _, heading := range headings {
		category := models.TrackerCategory{Heading: heading}
		for _, jt := range s.store.Trackers {
			if jt.Category != heading {
				continue
			}
			id, err := uuid.Parse(jt.ID)
			if err != nil {
				continue
			}
			category.Trackers = append(category.Trackers, models.Tracker{
				ID:       id,
				Name:     jt.Name,
				Color:    jt.Color,
				Emoji:    jt.Emoji,
				Schedule: models.DecodeSchedule(jt.Schedule),
				Type:     models.TrackerType(jt.Type),
				IsPinned: jt.IsPinned,
			})
		}
		categories = append(categories, category)
	}
	return categories
}

func (s *JSONStore) GetCategories() ([]models.TrackerCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.categoriesLocked(), nil
}

func (s *JSONStore) AddCategory(heading string) error {
	s.mu.Lock()
	if err := s.loaded(); err != nil {
		s.mu.Unlock()
		return err
	}
	for _, h := range s.store.Categories {
		if h == heading {
			s.mu.Unlock()
			return nil
		}
	}

	before := s.categoriesLocked()
	s.store.Categories = append(s.store.Categories, heading)
	if err := s.save(); err != nil {
		s.revert()
		s.mu.Unlock()
		return err
	}
	after := s.categoriesLocked()
	s.mu.Unlock()

	s.NotifyCategories(DiffCategoryLists(before, after))
	return nil
}

func (s *JSONStore) ResolveCategory(heading string) (models.TrackerCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return models.TrackerCategory{}, err
	}
	for _, category := range s.categoriesLocked() {
		if category.Heading == heading {
			return category, nil
		}
	}
	return models.TrackerCategory{}, fmt.Errorf("%w: %q", ErrCategoryNotFound, heading)
}

func (s *JSONStore) AddTracker(tracker models.Tracker, categoryHeading string) error {
	s.mu.Lock()
	if err := s.loaded(); err != nil {
		s.mu.Unlock()
		return err
	}

	found := false
	for _, h := range s.store.Categories {
		if h == categoryHeading {
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, categoryHeading)
	}

	before := s.categoriesLocked()
	s.store.Trackers = append(s.store.Trackers, jsonTracker{
		ID:       tracker.ID.String(),
		Name:     tracker.Name,
		Color:    tracker.Color,
		Emoji:    tracker.Emoji,
		Schedule: models.EncodeSchedule(tracker.Schedule),
		Type:     string(tracker.Type),
		IsPinned: tracker.IsPinned,
		Category: categoryHeading,
	})
	if err := s.save(); err != nil {
		s.revert()
		s.mu.Unlock()
		return err
	}
	after := s.categoriesLocked()
	s.mu.Unlock()

	s.NotifyTrackers(DiffTrackerInsert(before, after))
	return nil
}

func (s *JSONStore) UpdateTracker(tracker models.Tracker, categoryHeading string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}

	found := false
	for _, h := range s.store.Categories {
		if h == categoryHeading {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, categoryHeading)
	}

	for i, jt := range s.store.Trackers {
		if jt.ID != tracker.ID.String() {
			continue
		}
		s.store.Trackers[i] = jsonTracker{
			ID:       jt.ID,
			Name:     tracker.Name,
			Color:    tracker.Color,
			Emoji:    tracker.Emoji,
			Schedule: models.EncodeSchedule(tracker.Schedule),
			Type:     string(tracker.Type),
			IsPinned: tracker.IsPinned,
			Category: categoryHeading,
		}
		if err := s.save(); err != nil {
			s.revert()
			return err
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrTrackerNotFound, tracker.ID)
}

func (s *JSONStore) PinTracker(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}

	for i, jt := range s.store.Trackers {
		if jt.ID == id.String() {
			s.store.Trackers[i].IsPinned = !jt.IsPinned
			if err := s.save(); err != nil {
				s.revert()
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrTrackerNotFound, id)
}

func (s *JSONStore) DeleteTracker(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}

	idx := -1
	for i, jt := range s.store.Trackers {
		if jt.ID == id.String() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrTrackerNotFound, id)
	}

	s.store.Trackers = append(s.store.Trackers[:idx], s.store.Trackers[idx+1:]...)

	// Cascade: drop the tracker's records
	kept := s.store.Records[:0]
	for _, r := range s.store.Records {
		if r.TrackerID != id {
			kept = append(kept, r)
		}
	}
	s.store.Records = kept

	if err := s.save(); err != nil {
		s.revert()
		return err
	}
	return nil
}

func (s *JSONStore) GetTracker(id uuid.UUID) (models.Tracker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return models.Tracker{}, err
	}

	for _, jt := range s.store.Trackers {
		if jt.ID == id.String() {
			return models.Tracker{
				ID:       id,
				Name:     jt.Name,
				Color:    jt.Color,
				Emoji:    jt.Emoji,
				Schedule: models.DecodeSchedule(jt.Schedule),
				Type:     models.TrackerType(jt.Type),
				IsPinned: jt.IsPinned,
			}, nil
		}
	}
	return models.Tracker{}, fmt.Errorf("%w: %s", ErrTrackerNotFound, id)
}

func (s *JSONStore) GetRecords(trackerID uuid.UUID) ([]models.TrackerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}

	var records []models.TrackerRecord
	for _, r := range s.store.Records {
		if r.TrackerID == trackerID {
			records = append(records, r)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Day < records[j].Day })
	return records, nil
}

func (s *JSONStore) AddRecord(trackerID uuid.UUID, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}

	found := false
	for _, jt := range s.store.Trackers {
		if jt.ID == trackerID.String() {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrTrackerNotFound, trackerID)
	}

	day := models.DayOf(date)
	for _, r := range s.store.Records {
		if r.TrackerID == trackerID && r.Day == day {
			return nil
		}
	}

	s.store.Records = append(s.store.Records, models.TrackerRecord{TrackerID: trackerID, Day: day})
	if err := s.save(); err != nil {
		s.revert()
		return err
	}
	return nil
}

func (s *JSONStore) DeleteRecord(trackerID uuid.UUID, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}

	day := models.DayOf(date)
	for i, r := range s.store.Records {
		if r.TrackerID == trackerID && r.Day == day {
			s.store.Records = append(s.store.Records[:i], s.store.Records[i+1:]...)
			if err := s.save(); err != nil {
				s.revert()
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("%w: tracker %s on %s", ErrRecordNotFound, trackerID, day)
}

func (s *JSONStore) CompletedCount() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return 0, err
	}
	return len(s.store.Records), nil
}

func (s *JSONStore) GetStats() (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return Stats{}, err
	}
	return ComputeStats(s.store.Records), nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
