package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kirastone/trackly/internal/models"
	"github.com/kirastone/trackly/internal/storage"
)

// GetRecords returns all completion records for a tracker. An empty result is
// valid; only storage failures produce an error.
func (s *Store) GetRecords(trackerID uuid.UUID) ([]models.TrackerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT tracker_id, day FROM records WHERE tracker_id = ? ORDER BY day", trackerID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.TrackerRecord
	for rows.Next() {
		var id, day string
		if err := rows.Scan(&id, &day); err != nil {
			return nil, err
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid record tracker id %q", storage.ErrDecoding, id)
		}
		records = append(records, models.TrackerRecord{TrackerID: parsed, Day: day})
	}
	return records, rows.Err()
}

// AddRecord marks the tracker complete for the day containing date.
// Completing an already-completed day is a no-op; duplicates are never
// created.
func (s *Store) AddRecord(trackerID uuid.UUID, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM trackers WHERE id = ?", trackerID.String()).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return fmt.Errorf("%w: %s", storage.ErrTrackerNotFound, trackerID)
	}

	day := models.DayOf(date)
	var completed int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM records WHERE tracker_id = ? AND day = ?", trackerID.String(), day).Scan(&completed); err != nil {
		return err
	}
	if completed > 0 {
		return nil
	}

	if _, err := s.db.Exec("INSERT INTO records (tracker_id, day) VALUES (?, ?)", trackerID.String(), day); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrSave, err)
	}
	return nil
}

// DeleteRecord removes the completion record for the day containing date.
func (s *Store) DeleteRecord(trackerID uuid.UUID, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := models.DayOf(date)
	res, err := s.db.Exec("DELETE FROM records WHERE tracker_id = ? AND day = ?", trackerID.String(), day)
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrSave, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: tracker %s on %s", storage.ErrRecordNotFound, trackerID, day)
	}
	return nil
}

// CompletedCount returns the total number of completion events across all
// trackers.
func (s *Store) CompletedCount() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count)
	return count, err
}

// GetStats derives the aggregate statistics from the full record set.
func (s *Store) GetStats() (storage.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT tracker_id, day FROM records")
	if err != nil {
		return storage.Stats{}, err
	}
	defer rows.Close()

	var records []models.TrackerRecord
	for rows.Next() {
		var id, day string
		if err := rows.Scan(&id, &day); err != nil {
			return storage.Stats{}, err
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return storage.Stats{}, fmt.Errorf("%w: invalid record tracker id %q", storage.ErrDecoding, id)
		}
		records = append(records, models.TrackerRecord{TrackerID: parsed, Day: day})
	}
	if err := rows.Err(); err != nil {
		return storage.Stats{}, err
	}

	return storage.ComputeStats(records), nil
}
