package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/kirastone/trackly/internal/models"
	"github.com/kirastone/trackly/internal/storage"
)

// GetCategories returns all categories sorted by heading ascending, each
// populated with its trackers in insertion order.
func (s *Store) GetCategories() ([]models.TrackerCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getCategoriesLocked()
}

func (s *Store) getCategoriesLocked() ([]models.TrackerCategory, error) {
	rows, err := s.db.Query("SELECT heading FROM categories ORDER BY heading")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.TrackerCategory
	for rows.Next() {
		var heading string
		if err := rows.Scan(&heading); err != nil {
			return nil, err
		}
		categories = append(categories, models.TrackerCategory{Heading: heading})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range categories {
		trackers, err := s.trackersInCategoryLocked(categories[i].Heading)
		if err != nil {
			return nil, err
		}
		categories[i].Trackers = trackers
	}

	return categories, nil
}

// AddCategory inserts a category with an empty tracker set. Soft uniqueness:
// when the heading already exists the call is a silent no-op.
func (s *Store) AddCategory(heading string) error {
	s.mu.Lock()
	before, err := s.getCategoriesLocked()
	if err != nil {
		s.mu.Unlock()
		return err
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM categories WHERE heading = ?", heading).Scan(&count); err != nil {
		s.mu.Unlock()
		return err
	}
	if count > 0 {
		s.mu.Unlock()
		return nil
	}

	if _, err := s.db.Exec("INSERT INTO categories (heading) VALUES (?)", heading); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %v", storage.ErrSave, err)
	}

	after, err := s.getCategoriesLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.NotifyCategories(storage.DiffCategoryLists(before, after))
	return nil
}

// ResolveCategory resolves a heading to the persisted category.
func (s *Store) ResolveCategory(heading string) (models.TrackerCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolveCategoryLocked(heading)
}

func (s *Store) resolveCategoryLocked(heading string) (models.TrackerCategory, error) {
	var found string
	err := s.db.QueryRow("SELECT heading FROM categories WHERE heading = ?", heading).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TrackerCategory{}, fmt.Errorf("%w: %q", storage.ErrCategoryNotFound, heading)
		}
		return models.TrackerCategory{}, err
	}

	trackers, err := s.trackersInCategoryLocked(found)
	if err != nil {
		return models.TrackerCategory{}, err
	}

	return models.TrackerCategory{Heading: found, Trackers: trackers}, nil
}
