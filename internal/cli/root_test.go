package cli

import (
	"testing"
	"time"

	"github.com/kirastone/trackly/internal/models"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		input   string
		want    []models.WeekDay
		wantErr bool
	}{
		{"", nil, false},
		{"mon", []models.WeekDay{models.Monday}, false},
		{"mon,wed,fri", []models.WeekDay{models.Monday, models.Wednesday, models.Friday}, false},
		{"MON, Tuesday ", []models.WeekDay{models.Monday, models.Tuesday}, false},
		{"mon,mon", []models.WeekDay{models.Monday}, false},
		{"blursday", nil, true},
	}

	for _, tt := range tests {
		got, err := ParseWeekdays(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseWeekdays(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWeekdays(%q) failed: %v", tt.input, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			}
		}
	}
}

func TestFormatSchedule(t *testing.T) {
	tests := []struct {
		schedule []models.WeekDay
		want     string
	}{
		{nil, "-"},
		{models.AllWeekDays, "every day"},
		{[]models.WeekDay{models.Monday, models.Wednesday}, "Mo,We"},
		// Output order is Monday-first regardless of input order.
		{[]models.WeekDay{models.Sunday, models.Monday}, "Mo,Su"},
	}

	for _, tt := range tests {
		if got := FormatSchedule(tt.schedule); got != tt.want {
			t.Errorf("FormatSchedule(%v) = %q, want %q", tt.schedule, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.March || got.Day() != 15 {
		t.Errorf("ParseDate = %v", got)
	}

	if _, err := ParseDate("15/03/2024"); err == nil {
		t.Error("expected error for wrong date format")
	}

	now, err := ParseDate("")
	if err != nil {
		t.Fatalf("ParseDate(\"\") failed: %v", err)
	}
	if time.Since(now) > time.Minute {
		t.Errorf("empty date should default to now, got %v", now)
	}
}
