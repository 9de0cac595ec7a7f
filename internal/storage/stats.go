package storage

import (
	"sort"
	"time"

	"github.com/kirastone/trackly/internal/models"
)

// Stats holds the aggregate completion statistics shown on the statistics
// screen.
//
// PerfectDays counts distinct calendar days with at least one completion.
type Stats struct {
	PerfectDays        int
	AverageCompletions int
	BestStreak         int
}

// ComputeStats derives the statistics from the full record set.
func ComputeStats(records []models.TrackerRecord) Stats {
	days := DistinctDays(records)
	if len(days) == 0 {
		return Stats{}
	}

	return Stats{
		PerfectDays:        len(days),
		AverageCompletions: len(records) / len(days),
		BestStreak:         BestStreak(days),
	}
}

// DistinctDays returns the sorted set of calendar days that appear in the
// record list.
func DistinctDays(records []models.TrackerRecord) []string {
	set := make(map[string]bool, len(records))
	for _, r := range records {
		set[r.Day] = true
	}

	days := make([]string, 0, len(set))
	for day := range set {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// BestStreak returns the length of the longest run of consecutive calendar
// days in the sorted distinct day list. Days that fail to parse are skipped.
func BestStreak(days []string) int {
	var offsets []int
	var first time.Time
	for _, day := range days {
		t, err := models.ParseDay(day)
		if err != nil {
			continue
		}
		if len(offsets) == 0 {
			first = t
		}
		offsets = append(offsets, int(t.Sub(first).Hours()/24))
	}
	if len(offsets) == 0 {
		return 0
	}

	best, run := 1, 1
	for i := 1; i < len(offsets); i++ {
		if offsets[i] == offsets[i-1]+1 {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}
