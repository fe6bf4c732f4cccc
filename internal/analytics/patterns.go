package analytics

import (
	"fmt"
	"strings"

	"github.com/gobinda22/moodtracker/internal"
	"github.com/gobinda22/moodtracker/internal/dateutil"
)

// WeekdayBucket reports the dominant mood for one day of the week
// (0=Sunday..6=Saturday). Mood is nil when nothing was logged on that
// weekday.
type WeekdayBucket struct {
	Day   int            `json:"day"`
	Label string         `json:"label"`
	Mood  *internal.Mood `json:"mood"`
	Count int            `json:"count"`
}

// WeekdayPattern is the weekday bucketing result plus its insight text.
type WeekdayPattern struct {
	Data    []WeekdayBucket `json:"data"`
	Insight string          `json:"insight"`
}

// TimeBucket reports the dominant mood for one time-of-day slot. Mood is
// nil when the slot is empty.
type TimeBucket struct {
	Time  string         `json:"time"`
	Mood  *internal.Mood `json:"mood"`
	Count int            `json:"count"`
}

// TimeOfDayPattern is the time-of-day bucketing result plus its insight text.
type TimeOfDayPattern struct {
	Data    []TimeBucket `json:"data"`
	Insight string       `json:"insight"`
}

// Insight fallbacks and sentence thresholds. A dominant mood needs at
// least two occurrences in its bucket before it counts as a pattern.
const (
	patternThreshold  = 2
	noWeekdayPatterns = "No consistent patterns found yet."
	noTimePatterns    = "No consistent time of day patterns found yet."
)

var (
	happyMoodIDs    = map[string]bool{"happy": true, "excited": true}
	hardMoodIDs     = map[string]bool{"sad": true, "angry": true}
	positiveMoodIDs = map[string]bool{"happy": true, "excited": true, "calm": true}
)

// dominantMood picks the mood with the highest tally. Ties break toward
// catalog order, which keeps the selection deterministic.
func dominantMood(tally map[string]int, catalog *internal.Catalog) (*internal.Mood, int) {
	var best *internal.Mood
	bestCount := 0
	for _, mood := range catalog.Moods() {
		if count := tally[mood.ID]; count > bestCount {
			m := mood
			best = &m
			bestCount = count
		}
	}
	return best, bestCount
}

// ComputeWeekdayPattern buckets entries by day of week, selects the
// dominant mood per bucket, and synthesizes the weekday insight sentence.
func ComputeWeekdayPattern(log internal.MoodLog, catalog *internal.Catalog) WeekdayPattern {
	tallies := make([]map[string]int, 7)
	for i := range tallies {
		tallies[i] = make(map[string]int)
	}
	for date, entry := range log {
		day, err := dateutil.Weekday(date)
		if err != nil {
			continue
		}
		tallies[day][entry.MoodID]++
	}

	buckets := make([]WeekdayBucket, 0, 7)
	for day := 0; day < 7; day++ {
		mood, count := dominantMood(tallies[day], catalog)
		buckets = append(buckets, WeekdayBucket{
			Day:   day,
			Label: dateutil.WeekdayName(day),
			Mood:  mood,
			Count: count,
		})
	}

	return WeekdayPattern{Data: buckets, Insight: weekdayInsight(buckets)}
}

func weekdayInsight(buckets []WeekdayBucket) string {
	best := bestWeekday(buckets, nil)
	if best == nil || best.Count < patternThreshold {
		return noWeekdayPatterns
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You tend to feel %s on %ss.", strings.ToLower(best.Mood.Label), best.Label)

	if happiest := bestWeekday(buckets, happyMoodIDs); happiest != nil && happiest.Count >= patternThreshold {
		fmt.Fprintf(&b, " %s tends to be your happiest day.", happiest.Label)
	}
	if hardest := bestWeekday(buckets, hardMoodIDs); hardest != nil &&
		hardest.Count >= patternThreshold && hardest.Label != best.Label {
		fmt.Fprintf(&b, " %s is often your most challenging day.", hardest.Label)
	}
	return b.String()
}

// bestWeekday returns the non-empty bucket with the highest dominance
// count, optionally restricted to buckets whose dominant mood id is in
// moodIDs. Ties break toward the earlier weekday.
func bestWeekday(buckets []WeekdayBucket, moodIDs map[string]bool) *WeekdayBucket {
	var best *WeekdayBucket
	for i := range buckets {
		bucket := &buckets[i]
		if bucket.Mood == nil {
			continue
		}
		if moodIDs != nil && !moodIDs[bucket.Mood.ID] {
			continue
		}
		if best == nil || bucket.Count > best.Count {
			best = bucket
		}
	}
	return best
}

// ComputeTimeOfDayPattern buckets entries by the time-of-day slot of
// their creation timestamp. Entries without a timestamp are excluded from
// this pass only; they still count everywhere else.
func ComputeTimeOfDayPattern(log internal.MoodLog, catalog *internal.Catalog) TimeOfDayPattern {
	tallies := make(map[string]map[string]int, len(dateutil.TimeSlots))
	for _, slot := range dateutil.TimeSlots {
		tallies[slot] = make(map[string]int)
	}
	for _, entry := range log {
		if entry.Timestamp.IsZero() {
			continue
		}
		slot := dateutil.TimeOfDay(entry.Timestamp.Hour())
		tallies[slot][entry.MoodID]++
	}

	buckets := make([]TimeBucket, 0, len(dateutil.TimeSlots))
	for _, slot := range dateutil.TimeSlots {
		mood, count := dominantMood(tallies[slot], catalog)
		buckets = append(buckets, TimeBucket{Time: slot, Mood: mood, Count: count})
	}

	return TimeOfDayPattern{Data: buckets, Insight: timeOfDayInsight(buckets)}
}

func timeOfDayInsight(buckets []TimeBucket) string {
	best := bestTimeSlot(buckets, nil)
	if best == nil || best.Count < patternThreshold {
		return noTimePatterns
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You typically feel %s during the %s.",
		strings.ToLower(best.Mood.Label), strings.ToLower(best.Time))

	if positive := bestTimeSlot(buckets, positiveMoodIDs); positive != nil && positive.Count >= patternThreshold {
		fmt.Fprintf(&b, " The %s is often your best time of day.", strings.ToLower(positive.Time))
	}
	return b.String()
}

func bestTimeSlot(buckets []TimeBucket, moodIDs map[string]bool) *TimeBucket {
	var best *TimeBucket
	for i := range buckets {
		bucket := &buckets[i]
		if bucket.Mood == nil {
			continue
		}
		if moodIDs != nil && !moodIDs[bucket.Mood.ID] {
			continue
		}
		if best == nil || bucket.Count > best.Count {
			best = bucket
		}
	}
	return best
}
