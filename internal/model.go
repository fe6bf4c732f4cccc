package internal

import "time"

type User struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
}

// Mood is one entry of the static mood catalog. Loaded once at startup,
// never mutated.
type Mood struct {
	ID    string `json:"id"`
	Emoji string `json:"emoji"`
	Color string `json:"color"` // '#RRGGBB'
	Label string `json:"label"`
}

// MoodEntry is one logged mood for exactly one calendar date. A zero
// Timestamp means the creation instant is unknown; such entries are
// excluded from time-of-day analysis but counted everywhere else.
type MoodEntry struct {
	MoodID    string    `json:"mood_id"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// MoodLog maps a date key ("YYYY-MM-DD") to the single entry logged for
// that date. Logging twice for the same date overwrites the prior entry
// (last-write-wins, no history retained).
type MoodLog map[string]MoodEntry

// Dates returns the log's date keys in no particular order.
func (l MoodLog) Dates() []string {
	dates := make([]string, 0, len(l))
	for d := range l {
		dates = append(dates, d)
	}
	return dates
}

// Streaks is derived state, recomputed in full from the MoodLog on every
// mutation. It is never persisted separately from the log.
type Streaks struct {
	Current        int    `json:"current"`
	Longest        int    `json:"longest"`
	LastLoggedDate string `json:"last_logged_date,omitempty"`
}

// Badge is an achievement awarded by the aggregate scorer.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}
