package storage

import (
	"testing"

	"github.com/google/uuid"

	"github.com/kirastone/trackly/internal/models"
)

func rec(id uuid.UUID, day string) models.TrackerRecord {
	return models.TrackerRecord{TrackerID: id, Day: day}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats.PerfectDays != 0 || stats.AverageCompletions != 0 || stats.BestStreak != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestComputeStats(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	records := []models.TrackerRecord{
		rec(a, "2024-01-01"),
		rec(b, "2024-01-01"),
		rec(a, "2024-01-02"),
		rec(a, "2024-01-03"),
		rec(b, "2024-01-05"),
		rec(a, "2024-01-06"),
	}

	stats := ComputeStats(records)
	if stats.PerfectDays != 5 {
		t.Errorf("PerfectDays = %d, want 5", stats.PerfectDays)
	}
	// 6 records over 5 active days
	if stats.AverageCompletions != 1 {
		t.Errorf("AverageCompletions = %d, want 1", stats.AverageCompletions)
	}
	if stats.BestStreak != 3 {
		t.Errorf("BestStreak = %d, want 3", stats.BestStreak)
	}
}

func TestBestStreak(t *testing.T) {
	tests := []struct {
		name string
		days []string
		want int
	}{
		{"empty", nil, 0},
		{"single day", []string{"2024-03-10"}, 1},
		{"no consecutive days", []string{"2024-03-10", "2024-03-12", "2024-03-14"}, 1},
		{"run at the end", []string{"2024-01-01", "2024-01-02", "2024-01-04", "2024-01-05", "2024-01-06"}, 3},
		{"across month boundary", []string{"2024-01-30", "2024-01-31", "2024-02-01"}, 3},
		{"unparseable days skipped", []string{"garbage", "2024-01-01", "2024-01-02"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BestStreak(tt.days); got != tt.want {
				t.Errorf("BestStreak(%v) = %d, want %d", tt.days, got, tt.want)
			}
		})
	}
}

func TestDistinctDaysSortedAndDeduped(t *testing.T) {
	a := uuid.New()
	records := []models.TrackerRecord{
		rec(a, "2024-02-02"),
		rec(a, "2024-02-01"),
		rec(uuid.New(), "2024-02-01"),
	}

	days := DistinctDays(records)
	want := []string{"2024-02-01", "2024-02-02"}
	if len(days) != len(want) {
		t.Fatalf("got %d days, want %d", len(days), len(want))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("days[%d] = %q, want %q", i, days[i], want[i])
		}
	}
}
