package models

import "time"

// WeekDay is a calendar weekday using the Sunday=1 ... Saturday=7 numbering.
// The same numbering is used for the persisted schedule bitmask and for the
// due-date comparison, so the two can never drift apart.
type WeekDay int

const (
	Sunday    WeekDay = 1
	Monday    WeekDay = 2
	Tuesday   WeekDay = 3
	Wednesday WeekDay = 4
	Thursday  WeekDay = 5
	Friday    WeekDay = 6
	Saturday  WeekDay = 7
)

// AllWeekDays lists the canonical weekdays in Monday-first display order.
var AllWeekDays = []WeekDay{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d WeekDay) String() string {
	switch d {
	case Monday:
		return "Monday"
	case Tuesday:
		return "Tuesday"
	case Wednesday:
		return "Wednesday"
	case Thursday:
		return "Thursday"
	case Friday:
		return "Friday"
	case Saturday:
		return "Saturday"
	case Sunday:
		return "Sunday"
	default:
		return "Unknown"
	}
}

// Short returns the two-letter abbreviation used in list output.
func (d WeekDay) Short() string {
	switch d {
	case Monday:
		return "Mo"
	case Tuesday:
		return "Tu"
	case Wednesday:
		return "We"
	case Thursday:
		return "Th"
	case Friday:
		return "Fr"
	case Saturday:
		return "Sa"
	case Sunday:
		return "Su"
	default:
		return "??"
	}
}

// WeekDayFromTime converts a time.Weekday (Sunday=0) to a WeekDay (Sunday=1).
func WeekDayFromTime(wd time.Weekday) WeekDay {
	return WeekDay(int(wd) + 1)
}

// Time converts a WeekDay back to the time.Weekday numbering.
func (d WeekDay) Time() time.Weekday {
	return time.Weekday(int(d) - 1)
}

// EncodeSchedule packs a set of weekdays into a bitmask. Bit positions 1-7
// correspond to the weekday numbering; bit 0 is reserved. The mask is stored
// in a 16-bit field for headroom.
func EncodeSchedule(days []WeekDay) int16 {
	var mask int16
	for _, day := range days {
		mask |= 1 << day
	}
	return mask
}

// DecodeSchedule unpacks a bitmask into weekdays in Monday-first order.
// Bits outside the seven canonical positions are ignored.
func DecodeSchedule(mask int16) []WeekDay {
	var days []WeekDay
	for _, day := range AllWeekDays {
		if mask&(1<<day) != 0 {
			days = append(days, day)
		}
	}
	return days
}

// ScheduleContains reports whether day is part of the schedule.
func ScheduleContains(schedule []WeekDay, day WeekDay) bool {
	for _, d := range schedule {
		if d == day {
			return true
		}
	}
	return false
}
