// Package visibility computes the filtered, grouped, ordered tracker list
// the UI renders for a given date, search string and completion filter. It is
// pure: callers pass in a snapshot of categories and records.
package visibility

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kirastone/trackly/internal/constants"
	"github.com/kirastone/trackly/internal/models"
)

// Filter narrows the visible set on top of the due-date and text filters.
type Filter string

const (
	FilterAll          Filter = "all"
	FilterToday        Filter = "today"
	FilterCompleted    Filter = "completed"
	FilterNotCompleted Filter = "not_completed"
)

// EmptyState classifies an empty result so the UI can pick the right
// placeholder.
type EmptyState int

const (
	// StateNormal means there is something to render.
	StateNormal EmptyState = iota
	// StateNoTrackers means the user has nothing matching the date yet.
	StateNoTrackers
	// StateNotFound means a non-empty search matched nothing.
	StateNotFound
)

// recordSet indexes completion records by tracker and day for O(1) lookups.
type recordSet map[uuid.UUID]map[string]bool

func indexRecords(records []models.TrackerRecord) recordSet {
	set := make(recordSet)
	for _, r := range records {
		days := set[r.TrackerID]
		if days == nil {
			days = make(map[string]bool)
			set[r.TrackerID] = days
		}
		days[r.Day] = true
	}
	return set
}

func (rs recordSet) completedOn(id uuid.UUID, day string) bool {
	return rs[id][day]
}

func (rs recordSet) hasAny(id uuid.UUID) bool {
	return len(rs[id]) > 0
}

// Compute returns the visible groups for the selected date plus the
// empty-state classification. Pinned trackers are lifted into a synthetic
// leading group; the remaining categories keep their name-ascending order and
// trackers keep insertion order.
//
// now is passed explicitly so the "today" filter stays testable.
func Compute(
	categories []models.TrackerCategory,
	records []models.TrackerRecord,
	selected time.Time,
	now time.Time,
	search string,
	filter Filter,
) ([]models.TrackerCategory, EmptyState) {
	if filter == FilterToday {
		selected = now
	}

	set := indexRecords(records)
	groups := visibleGroups(categories, set, selected, search)

	switch filter {
	case FilterCompleted:
		groups = filterByCompletion(groups, set, selected, true)
	case FilterNotCompleted:
		groups = filterByCompletion(groups, set, selected, false)
	}

	if len(groups) == 0 {
		if strings.TrimSpace(search) != "" {
			return nil, StateNotFound
		}
		return nil, StateNoTrackers
	}
	return groups, StateNormal
}

// dueOn decides whether a tracker is relevant on the selected date. Habits
// follow their weekday schedule. Irregular events stay due until completed,
// then remain visible only on the day they were completed.
func dueOn(tracker models.Tracker, set recordSet, selected time.Time) bool {
	switch tracker.Type {
	case models.TrackerHabit:
		return tracker.DueOn(models.WeekDayFromTime(selected.Weekday()))
	case models.TrackerIrregularEvent:
		if !set.hasAny(tracker.ID) {
			return true
		}
		return set.completedOn(tracker.ID, models.DayOf(selected))
	default:
		return false
	}
}

func matchesSearch(tracker models.Tracker, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(tracker.Name), strings.ToLower(search))
}

func visibleGroups(categories []models.TrackerCategory, set recordSet, selected time.Time, search string) []models.TrackerCategory {
	var groups []models.TrackerCategory
	var pinned []models.Tracker

	for _, category := range categories {
		var surviving []models.Tracker
		for _, tracker := range category.Trackers {
			if !dueOn(tracker, set, selected) || !matchesSearch(tracker, search) {
				continue
			}
			if tracker.IsPinned {
				pinned = append(pinned, tracker)
				continue
			}
			surviving = append(surviving, tracker)
		}
		if len(surviving) > 0 {
			groups = append(groups, models.TrackerCategory{
				Heading:  category.Heading,
				Trackers: surviving,
			})
		}
	}

	// The pinned group always leads, regardless of the name sort.
	if len(pinned) > 0 {
		groups = append([]models.TrackerCategory{{
			Heading:  constants.PinnedCategoryTitle,
			Trackers: pinned,
		}}, groups...)
	}

	return groups
}

func filterByCompletion(groups []models.TrackerCategory, set recordSet, selected time.Time, completed bool) []models.TrackerCategory {
	day := models.DayOf(selected)

	var filtered []models.TrackerCategory
	for _, group := range groups {
		var surviving []models.Tracker
		for _, tracker := range group.Trackers {
			if set.completedOn(tracker.ID, day) == completed {
				surviving = append(surviving, tracker)
			}
		}
		if len(surviving) > 0 {
			filtered = append(filtered, models.TrackerCategory{
				Heading:  group.Heading,
				Trackers: surviving,
			})
		}
	}
	return filtered
}
