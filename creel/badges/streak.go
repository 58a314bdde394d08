package badges

import (
	"sort"
	"time"
)

// LongestRun returns the length of the longest run of consecutive calendar
// days in dates. The caller filters the dates by whatever per-day predicate
// it wants before calling; duplicates and time-of-day components are ignored.
func LongestRun(dates []time.Time) int {
	days := distinctSortedDays(dates)
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

// CurrentRun returns the length of the run of consecutive calendar days
// ending at the most recent date, walking backward until the first gap. A
// run only counts as current while its most recent day is today or
// yesterday relative to now; one missed day in between kills it. This is a
// distinct function from LongestRun on purpose: its semantics are "count
// backward contiguously from now", not "best window anywhere in history".
func CurrentRun(dates []time.Time, now time.Time) int {
	days := distinctSortedDays(dates)
	if len(days) == 0 {
		return 0
	}

	today := truncateDay(now)
	last := days[len(days)-1]
	if today.Sub(last) > 24*time.Hour {
		return 0
	}

	run := 1
	for i := len(days) - 1; i > 0; i-- {
		if days[i].Sub(days[i-1]) != 24*time.Hour {
			break
		}
		run++
	}
	return run
}

func distinctSortedDays(dates []time.Time) []time.Time {
	seen := make(map[time.Time]bool, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := truncateDay(d)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
