package service

import (
	"context"
	"fmt"

	"github.com/gobinda22/moodtracker/internal"
	"github.com/gobinda22/moodtracker/internal/dateutil"
)

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date   string         `json:"date"`
	Logged bool           `json:"logged"`
	Mood   *internal.Mood `json:"mood,omitempty"`
	Note   string         `json:"note,omitempty"`
}

// CalendarMonth is the grid-rendering support for one month: the day
// count, the weekday of day 1, and each day's logged mood if any.
type CalendarMonth struct {
	Year         int           `json:"year"`
	Month        int           `json:"month"` // 1..12
	MonthName    string        `json:"month_name"`
	DaysInMonth  int           `json:"days_in_month"`
	FirstWeekday int           `json:"first_weekday"` // 0=Sunday
	Days         []CalendarDay `json:"days"`
}

// CalendarMonth assembles the month grid for a user. month is 1-based.
func (s *MoodService) CalendarMonth(ctx context.Context, user *internal.User, year, month int) (CalendarMonth, error) {
	log, err := s.repo.LoadLog(ctx, user.ID)
	if err != nil {
		return CalendarMonth{}, err
	}

	month0 := month - 1
	days := dateutil.DaysInMonth(year, month0)
	grid := CalendarMonth{
		Year:         year,
		Month:        month,
		MonthName:    dateutil.MonthName(month0),
		DaysInMonth:  days,
		FirstWeekday: dateutil.FirstWeekdayOfMonth(year, month0),
		Days:         make([]CalendarDay, 0, days),
	}

	for day := 1; day <= days; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		cell := CalendarDay{Date: date}
		if entry, ok := log[date]; ok {
			cell.Logged = true
			cell.Note = entry.Note
			if mood, ok := s.catalog.ByID(entry.MoodID); ok {
				cell.Mood = &mood
			}
		}
		grid.Days = append(grid.Days, cell)
	}
	return grid, nil
}
