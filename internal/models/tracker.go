package models

import "github.com/google/uuid"

// TrackerType distinguishes recurring habits from one-off events.
type TrackerType string

const (
	TrackerHabit          TrackerType = "habit"
	TrackerIrregularEvent TrackerType = "irregular_event"
)

// Tracker is a user-defined habit or irregular event to track.
// All fields except IsPinned are immutable after creation; edits replace the
// whole value.
type Tracker struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	Color    string      `json:"color"` // hex token, e.g. "#FD4C49"
	Emoji    string      `json:"emoji"`
	Schedule []WeekDay   `json:"schedule,omitempty"` // empty for irregular events
	Type     TrackerType `json:"type"`
	IsPinned bool        `json:"is_pinned"`
}

// DueOn reports whether the tracker is scheduled for the given weekday.
// Only meaningful for habit trackers; irregular events are not schedule-driven.
func (t Tracker) DueOn(day WeekDay) bool {
	return ScheduleContains(t.Schedule, day)
}
