// Package analytics derives view-ready statistics from a MoodLog. Every
// function is pure and total: it reads the log, never mutates it, and
// returns a well-defined value for every input including the empty log.
// Derived values are always recomputed in full from the log, never
// incrementally patched.
package analytics

import (
	"sort"
	"time"

	"github.com/gobinda22/moodtracker/internal"
	"github.com/gobinda22/moodtracker/internal/dateutil"
)

// ComputeStreaks derives the logging streaks from the log's date keys.
// A streak counts consecutive calendar days with an entry, regardless of
// which mood was logged. The current streak is only alive when the most
// recent entry is dated today or yesterday relative to now.
func ComputeStreaks(log internal.MoodLog, now time.Time) internal.Streaks {
	dates := log.Dates()
	if len(dates) == 0 {
		return internal.Streaks{}
	}
	sort.Strings(dates)

	today := dateutil.FormatDate(now)
	yesterday := dateutil.DaysAgo(now, 1)
	latest := dates[len(dates)-1]

	streaks := internal.Streaks{LastLoggedDate: latest}

	if latest == today || latest == yesterday {
		streaks.Current = 1
		for i := len(dates) - 2; i >= 0; i-- {
			diff, err := dateutil.DayDiff(dates[i], dates[i+1])
			if err != nil || diff != 1 {
				break
			}
			streaks.Current++
		}
	}

	run := 1
	streaks.Longest = 1
	for i := 1; i < len(dates); i++ {
		diff, err := dateutil.DayDiff(dates[i-1], dates[i])
		if err == nil && diff == 1 {
			run++
		} else {
			run = 1
		}
		if run > streaks.Longest {
			streaks.Longest = run
		}
	}

	return streaks
}
