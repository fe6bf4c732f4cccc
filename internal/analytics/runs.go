package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gobinda22/moodtracker/internal"
	"github.com/gobinda22/moodtracker/internal/dateutil"
)

// Minimum log size before run detection produces anything, and the
// minimum run length worth a sentence.
const (
	runMinEntries = 3
	runMinLength  = 3
)

// ComputeRuns scans the log for maximal spans of consecutive calendar
// days sharing the same mood id. Every run of at least three days yields
// one sentence, in chronological order. A run that reaches the most
// recent logged date is phrased as ongoing; earlier runs are phrased as
// closed past ranges. Logs with fewer than three entries yield nothing.
func ComputeRuns(log internal.MoodLog, catalog *internal.Catalog) []string {
	insights := []string{}
	dates := log.Dates()
	if len(dates) < runMinEntries {
		return insights
	}
	sort.Strings(dates)

	length := 1
	moodID := log[dates[0]].MoodID
	start := dates[0]

	for i := 1; i < len(dates); i++ {
		diff, err := dateutil.DayDiff(dates[i-1], dates[i])
		if err == nil && diff == 1 && log[dates[i]].MoodID == moodID {
			length++
			continue
		}
		if length >= runMinLength {
			if sentence, ok := closedRunSentence(catalog, moodID, length, start, dates[i-1]); ok {
				insights = append(insights, sentence)
			}
		}
		length = 1
		moodID = log[dates[i]].MoodID
		start = dates[i]
	}

	if length >= runMinLength {
		if sentence, ok := ongoingRunSentence(catalog, moodID, length, start); ok {
			insights = append(insights, sentence)
		}
	}

	return insights
}

func closedRunSentence(catalog *internal.Catalog, moodID string, length int, start, end string) (string, bool) {
	mood, ok := catalog.ByID(moodID)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("You felt %s for %d consecutive days from %s to %s.",
		strings.ToLower(mood.Label), length, dateutil.HumanDate(start), dateutil.HumanDate(end)), true
}

func ongoingRunSentence(catalog *internal.Catalog, moodID string, length int, start string) (string, bool) {
	mood, ok := catalog.ByID(moodID)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("You've been feeling %s for %d consecutive days since %s.",
		strings.ToLower(mood.Label), length, dateutil.HumanDate(start)), true
}
