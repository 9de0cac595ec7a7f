package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kirastone/trackly/internal/models"
	"github.com/kirastone/trackly/internal/storage"
)

const trackerColumns = "id, name, color, emoji, schedule, type, is_pinned"

// decodeTracker converts a scanned row into a Tracker. NULL name/color/emoji
// marks corrupted or partially written state and is surfaced as a decoding
// error.
func decodeTracker(id string, name, color, emoji sql.NullString, schedule int64, typ string, pinned bool) (models.Tracker, error) {
	trackerID, err := uuid.Parse(id)
	if err != nil {
		return models.Tracker{}, fmt.Errorf("%w: invalid tracker id %q", storage.ErrDecoding, id)
	}
	if !name.Valid || !color.Valid || !emoji.Valid {
		return models.Tracker{}, fmt.Errorf("%w: tracker %s has missing fields", storage.ErrDecoding, id)
	}

	return models.Tracker{
		ID:       trackerID,
		Name:     name.String,
		Color:    color.String,
		Emoji:    emoji.String,
		Schedule: models.DecodeSchedule(int16(schedule)),
		Type:     models.TrackerType(typ),
		IsPinned: pinned,
	}, nil
}

func (s *Store) trackersInCategoryLocked(heading string) ([]models.Tracker, error) {
	rows, err := s.db.Query(
		"SELECT "+trackerColumns+" FROM trackers WHERE category = ? ORDER BY rowid", heading)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trackers []models.Tracker
	for rows.Next() {
		var id, typ string
		var name, color, emoji sql.NullString
		var schedule int64
		var pinned bool
		if err := rows.Scan(&id, &name, &color, &emoji, &schedule, &typ, &pinned); err != nil {
			return nil, err
		}
		tracker, err := decodeTracker(id, name, color, emoji, schedule, typ, pinned)
		if err != nil {
			return nil, err
		}
		trackers = append(trackers, tracker)
	}
	return trackers, rows.Err()
}

// AddTracker persists a new tracker under the given category. The category
// must already exist. Observers receive one batched update covering the
// inserted section (when the category becomes visible) and row.
func (s *Store) AddTracker(tracker models.Tracker, categoryHeading string) error {
	s.mu.Lock()
	before, err := s.getCategoriesLocked()
	if err != nil {
		s.mu.Unlock()
		return err
	}

	if _, err := s.resolveCategoryLocked(categoryHeading); err != nil {
		s.mu.Unlock()
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	_, err = tx.Exec(`
		INSERT INTO trackers (id, name, color, emoji, schedule, type, is_pinned, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tracker.ID.String(), tracker.Name, tracker.Color, tracker.Emoji,
		int64(models.EncodeSchedule(tracker.Schedule)), string(tracker.Type), tracker.IsPinned, categoryHeading,
	)
	if err != nil {
		_ = tx.Rollback()
		s.mu.Unlock()
		return fmt.Errorf("%w: %v", storage.ErrSave, err)
	}
	if err := commit(tx); err != nil {
		s.mu.Unlock()
		return err
	}

	after, err := s.getCategoriesLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.NotifyTrackers(storage.DiffTrackerInsert(before, after))
	return nil
}

// UpdateTracker replaces the tracker's full attribute set, moving it to the
// given category when that differs from the current one.
func (s *Store) UpdateTracker(tracker models.Tracker, categoryHeading string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.resolveCategoryLocked(categoryHeading); err != nil {
		return err
	}

	res, err := s.db.Exec(`
		UPDATE trackers SET name = ?, color = ?, emoji = ?, schedule = ?, type = ?, is_pinned = ?, category = ?
		WHERE id = ?`,
		tracker.Name, tracker.Color, tracker.Emoji,
		int64(models.EncodeSchedule(tracker.Schedule)), string(tracker.Type), tracker.IsPinned,
		categoryHeading, tracker.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrSave, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", storage.ErrTrackerNotFound, tracker.ID)
	}
	return nil
}

// PinTracker toggles the pin flag in place.
func (s *Store) PinTracker(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("UPDATE trackers SET is_pinned = NOT is_pinned WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrSave, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", storage.ErrTrackerNotFound, id)
	}
	return nil
}

// DeleteTracker removes the tracker and all of its completion records in one
// transaction.
func (s *Store) DeleteTracker(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM trackers WHERE id = ?", id.String()).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return fmt.Errorf("%w: %s", storage.ErrTrackerNotFound, id)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM records WHERE tracker_id = ?", id.String()); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %v", storage.ErrSave, err)
	}
	if _, err := tx.Exec("DELETE FROM trackers WHERE id = ?", id.String()); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %v", storage.ErrSave, err)
	}
	return commit(tx)
}

// GetTracker fetches a single tracker by id.
func (s *Store) GetTracker(id uuid.UUID) (models.Tracker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getTrackerLocked(id)
}

func (s *Store) getTrackerLocked(id uuid.UUID) (models.Tracker, error) {
	row := s.db.QueryRow("SELECT "+trackerColumns+" FROM trackers WHERE id = ?", id.String())

	var rowID, typ string
	var name, color, emoji sql.NullString
	var schedule int64
	var pinned bool
	err := row.Scan(&rowID, &name, &color, &emoji, &schedule, &typ, &pinned)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tracker{}, fmt.Errorf("%w: %s", storage.ErrTrackerNotFound, id)
		}
		return models.Tracker{}, err
	}

	return decodeTracker(rowID, name, color, emoji, schedule, typ, pinned)
}
