package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalendarMonth(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	_, _, err := s.LogMood(ctx, testUser, &LogMoodRequest{MoodID: "happy", Date: "2024-02-14", Note: "valentine"})
	assert.NoError(t, err)

	grid, err := s.CalendarMonth(ctx, testUser, 2024, 2)
	assert.NoError(t, err)

	assert.Equal(t, 2024, grid.Year)
	assert.Equal(t, 2, grid.Month)
	assert.Equal(t, "February", grid.MonthName)
	assert.Equal(t, 29, grid.DaysInMonth) // leap year
	assert.Equal(t, 4, grid.FirstWeekday) // 2024-02-01 was a Thursday
	assert.Len(t, grid.Days, 29)

	day := grid.Days[13]
	assert.Equal(t, "2024-02-14", day.Date)
	assert.True(t, day.Logged)
	assert.NotNil(t, day.Mood)
	assert.Equal(t, "happy", day.Mood.ID)
	assert.Equal(t, "valentine", day.Note)

	assert.False(t, grid.Days[0].Logged)
	assert.Nil(t, grid.Days[0].Mood)
}
