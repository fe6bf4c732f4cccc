// Package dateutil holds the calendar arithmetic shared by the analytics
// core. All functions are pure; date keys are "YYYY-MM-DD" strings whose
// lexicographic order matches chronological order, which several callers
// rely on when sorting keys as strings.
package dateutil

import (
	"fmt"
	"time"
)

const DayKeyLayout = "2006-01-02"

// Time-of-day buckets, in their fixed reporting order.
const (
	Morning   = "Morning"
	Afternoon = "Afternoon"
	Evening   = "Evening"
	Night     = "Night"
)

// TimeSlots lists the time-of-day buckets in reporting order.
var TimeSlots = []string{Morning, Afternoon, Evening, Night}

var weekdayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// FormatDate renders t as a canonical date key. This is the single source
// of truth for date-key generation.
func FormatDate(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDay parses a date key back into a UTC midnight instant.
func ParseDay(key string) (time.Time, error) {
	return time.Parse(DayKeyLayout, key)
}

// DayDiff returns the calendar-day difference between the keys a and b
// (positive when b is later). Both sides are anchored at UTC midnight, so
// the result is a pure calendar difference immune to DST offsets.
func DayDiff(a, b string) (int, error) {
	ta, err := ParseDay(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDay(b)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}

// Weekday returns the day of week (0=Sunday..6=Saturday) for a date key.
func Weekday(key string) (int, error) {
	t, err := ParseDay(key)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}

// DaysInMonth returns the day count for a zero-based month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOfMonth returns the weekday (0=Sunday) of day 1 of a
// zero-based month.
func FirstWeekdayOfMonth(year, month int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// TimeOfDay buckets an hour (0..23). Boundary hours belong to the later
// bucket: hour 12 is Afternoon, hour 22 is Night.
func TimeOfDay(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 22:
		return Evening
	default:
		return Night
	}
}

// WeekdayName maps 0..6 (0=Sunday) to its English name.
func WeekdayName(day int) string {
	if day < 0 || day > 6 {
		return ""
	}
	return weekdayNames[day]
}

// MonthName maps a zero-based month to its English name.
func MonthName(month int) string {
	if month < 0 || month > 11 {
		return ""
	}
	return monthNames[month]
}

// IsToday reports whether the date key names the same calendar day as now.
func IsToday(key string, now time.Time) bool {
	return key == FormatDate(now)
}

// DaysAgo returns the date key n days before now.
func DaysAgo(now time.Time, n int) string {
	return FormatDate(now.AddDate(0, 0, -n))
}

// DateRange returns every date key from start through end inclusive.
// Returns nil if either key is malformed or end precedes start.
func DateRange(start, end string) []string {
	from, err := ParseDay(start)
	if err != nil {
		return nil
	}
	to, err := ParseDay(end)
	if err != nil {
		return nil
	}
	var keys []string
	for !from.After(to) {
		keys = append(keys, FormatDate(from))
		from = from.AddDate(0, 0, 1)
	}
	return keys
}

// HumanDate renders a date key as a readable date ("January 2, 2006").
// Malformed keys are returned unchanged.
func HumanDate(key string) string {
	t, err := ParseDay(key)
	if err != nil {
		return key
	}
	return t.Format("January 2, 2006")
}

// RelativeTime phrases how long ago t was relative to now. Beyond a week
// it falls back to the absolute human date.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 7*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	default:
		return t.Format("January 2, 2006")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
