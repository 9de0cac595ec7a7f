package models

import (
	"time"

	"github.com/google/uuid"
)

// DayFormat is the calendar-day format used for completion records (YYYY-MM-DD).
const DayFormat = "2006-01-02"

// TrackerRecord is evidence that a tracker was completed on a calendar day.
// It references its tracker by id only; a record never outlives its tracker.
type TrackerRecord struct {
	TrackerID uuid.UUID `json:"tracker_id"`
	Day       string    `json:"day"` // YYYY-MM-DD
}

// DayOf normalizes a timestamp to its calendar day. Time-of-day carries no
// meaning for completion records.
func DayOf(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a YYYY-MM-DD day back into a time at midnight.
func ParseDay(day string) (time.Time, error) {
	return time.Parse(DayFormat, day)
}

// SameDay reports whether the record falls on the day containing t.
func (r TrackerRecord) SameDay(t time.Time) bool {
	return r.Day == DayOf(t)
}
