package models

import (
	"testing"
	"time"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// Every subset of the seven weekdays must survive an encode/decode cycle.
	for bits := 0; bits < 1<<7; bits++ {
		var subset []WeekDay
		for i, day := range AllWeekDays {
			if bits&(1<<i) != 0 {
				subset = append(subset, day)
			}
		}

		got := DecodeSchedule(EncodeSchedule(subset))
		if len(got) != len(subset) {
			t.Fatalf("subset %07b: got %d days, want %d", bits, len(got), len(subset))
		}
		for _, day := range subset {
			if !ScheduleContains(got, day) {
				t.Fatalf("subset %07b: missing %s after round trip", bits, day)
			}
		}
	}
}

func TestDecodeIgnoresOutOfRangeBits(t *testing.T) {
	// Bit 0 is reserved and high bits are headroom; both must be ignored.
	mask := EncodeSchedule([]WeekDay{Monday, Friday})
	dirty := mask | 1 | 1<<8 | 1<<14

	got := DecodeSchedule(dirty)
	if len(got) != 2 || got[0] != Monday || got[1] != Friday {
		t.Errorf("DecodeSchedule(%016b) = %v, want [Monday Friday]", dirty, got)
	}
}

func TestDecodeOrderIsMondayFirst(t *testing.T) {
	mask := EncodeSchedule([]WeekDay{Sunday, Wednesday, Monday})
	got := DecodeSchedule(mask)

	want := []WeekDay{Monday, Wednesday, Sunday}
	for i, day := range want {
		if got[i] != day {
			t.Fatalf("DecodeSchedule order = %v, want %v", got, want)
		}
	}
}

func TestWeekDayTimeConversion(t *testing.T) {
	cases := []struct {
		std  time.Weekday
		want WeekDay
	}{
		{time.Sunday, Sunday},
		{time.Monday, Monday},
		{time.Wednesday, Wednesday},
		{time.Saturday, Saturday},
	}

	for _, tc := range cases {
		if got := WeekDayFromTime(tc.std); got != tc.want {
			t.Errorf("WeekDayFromTime(%v) = %v, want %v", tc.std, got, tc.want)
		}
		if got := tc.want.Time(); got != tc.std {
			t.Errorf("%v.Time() = %v, want %v", tc.want, got, tc.std)
		}
	}
}

func TestDayOf(t *testing.T) {
	morning := time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)
	evening := time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC)

	if DayOf(morning) != DayOf(evening) {
		t.Errorf("timestamps on the same day normalized differently: %s vs %s", DayOf(morning), DayOf(evening))
	}
	if DayOf(morning) != "2024-01-01" {
		t.Errorf("DayOf = %s, want 2024-01-01", DayOf(morning))
	}
}
