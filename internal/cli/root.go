package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kirastone/trackly/internal/constants"
	"github.com/kirastone/trackly/internal/models"
	"github.com/kirastone/trackly/internal/storage"
)

type Context struct {
	Store storage.Provider
	Debug bool
}

// ParseWeekdays parses a comma-separated list of weekdays into the schedule
// set, e.g. "mon,wed,fri".
func ParseWeekdays(s string) ([]models.WeekDay, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	dayMap := map[string]models.WeekDay{
		"sun":       models.Sunday,
		"sunday":    models.Sunday,
		"mon":       models.Monday,
		"monday":    models.Monday,
		"tue":       models.Tuesday,
		"tuesday":   models.Tuesday,
		"wed":       models.Wednesday,
		"wednesday": models.Wednesday,
		"thu":       models.Thursday,
		"thursday":  models.Thursday,
		"fri":       models.Friday,
		"friday":    models.Friday,
		"sat":       models.Saturday,
		"saturday":  models.Saturday,
	}

	var weekdays []models.WeekDay
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		wd, ok := dayMap[part]
		if !ok {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		if !models.ScheduleContains(weekdays, wd) {
			weekdays = append(weekdays, wd)
		}
	}

	return weekdays, nil
}

// FormatSchedule renders a schedule as short day names, "every day" when all
// seven are set, or a dash when empty.
func FormatSchedule(schedule []models.WeekDay) string {
	if len(schedule) == 0 {
		return "-"
	}
	if len(schedule) == 7 {
		return "every day"
	}

	var days []string
	for _, wd := range models.DecodeSchedule(models.EncodeSchedule(schedule)) {
		days = append(days, wd.Short())
	}
	return strings.Join(days, ",")
}

// ParseDate parses a YYYY-MM-DD argument, defaulting to today when empty.
func ParseDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// ParseTrackerID parses a tracker id argument.
func ParseTrackerID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid tracker id %q: %w", s, err)
	}
	return id, nil
}

// CategoryOf finds the heading of the category currently holding the tracker.
func CategoryOf(store storage.Provider, id uuid.UUID) (string, error) {
	categories, err := store.GetCategories()
	if err != nil {
		return "", err
	}
	for _, category := range categories {
		for _, tracker := range category.Trackers {
			if tracker.ID == id {
				return category.Heading, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", storage.ErrTrackerNotFound, id)
}

// AllRecords gathers the completion records of every tracker in the store.
func AllRecords(store storage.Provider) ([]models.TrackerRecord, error) {
	categories, err := store.GetCategories()
	if err != nil {
		return nil, err
	}

	var all []models.TrackerRecord
	for _, category := range categories {
		for _, tracker := range category.Trackers {
			records, err := store.GetRecords(tracker.ID)
			if err != nil {
				return nil, err
			}
			all = append(all, records...)
		}
	}
	return all, nil
}
