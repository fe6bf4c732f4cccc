package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gobinda22/moodtracker/internal"
	"github.com/gobinda22/moodtracker/internal/storage"
)

var testUser = &internal.User{ID: "u1", Token: "MOCK-TOKEN", Name: "Test User"}

func newTestService() *MoodService {
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	return NewMoodService(storage.NewMemoryStorage(), internal.DefaultCatalog(), internal.NopLogger{}).
		WithClock(func() time.Time { return now })
}

func TestLogMoodAndGetEntry(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	entry, streaks, err := s.LogMood(ctx, testUser, &LogMoodRequest{MoodID: "happy", Note: "good day"})
	assert.NoError(t, err)
	assert.NotNil(t, entry)
	assert.Equal(t, "happy", entry.MoodID)
	assert.Equal(t, 1, streaks.Current)
	assert.Equal(t, "2024-01-03", streaks.LastLoggedDate)

	got, err := s.GetEntry(ctx, testUser, "2024-01-03")
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, "good day", got.Note)
}

func TestLogMoodUnknownMoodIsSilentNoop(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	entry, _, err := s.LogMood(ctx, testUser, &LogMoodRequest{MoodID: "bogus"})
	assert.NoError(t, err)
	assert.Nil(t, entry)

	log, err := s.GetLog(ctx, testUser)
	assert.NoError(t, err)
	assert.Empty(t, log)
}

func TestLogMoodOverwriteIsLastWriteWins(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	_, _, err := s.LogMood(ctx, testUser, &LogMoodRequest{MoodID: "happy", Date: "2024-01-02"})
	assert.NoError(t, err)
	_, _, err = s.LogMood(ctx, testUser, &LogMoodRequest{MoodID: "sad", Note: "changed my mind", Date: "2024-01-02"})
	assert.NoError(t, err)

	log, err := s.GetLog(ctx, testUser)
	assert.NoError(t, err)
	assert.Len(t, log, 1)
	assert.Equal(t, "sad", log["2024-01-02"].MoodID)
	assert.Equal(t, "changed my mind", log["2024-01-02"].Note)
}

func TestDeleteEntryAbsentDateIsNoError(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	streaks, err := s.DeleteEntry(ctx, testUser, "2024-01-01")
	assert.NoError(t, err)
	assert.Equal(t, internal.Streaks{}, streaks)
}

func TestDeleteEntryRecomputesStreaks(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	for _, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		_, _, err := s.LogMood(ctx, testUser, &LogMoodRequest{MoodID: "calm", Date: date})
		assert.NoError(t, err)
	}

	streaks, err := s.DeleteEntry(ctx, testUser, "2024-01-02")
	assert.NoError(t, err)
	assert.Equal(t, 1, streaks.Current)
	assert.Equal(t, 1, streaks.Longest)
}

func TestGetEntryMissingReturnsNil(t *testing.T) {
	s := newTestService()

	entry, err := s.GetEntry(context.Background(), testUser, "2030-01-01")
	assert.NoError(t, err)
	assert.Nil(t, entry)
}

func TestLogMoodDefaultsToToday(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	_, _, err := s.LogMood(ctx, testUser, &LogMoodRequest{MoodID: "excited"})
	assert.NoError(t, err)

	entry, err := s.GetEntry(ctx, testUser, "2024-01-03")
	assert.NoError(t, err)
	assert.NotNil(t, entry)
}

func TestValidateLogMoodRequest(t *testing.T) {
	assert.NoError(t, ValidateLogMoodRequest(&LogMoodRequest{MoodID: "happy"}))
	assert.NoError(t, ValidateLogMoodRequest(&LogMoodRequest{MoodID: "happy", Date: "2024-01-02"}))
	assert.Error(t, ValidateLogMoodRequest(&LogMoodRequest{}))
	assert.Error(t, ValidateLogMoodRequest(&LogMoodRequest{MoodID: "happy", Date: "01/02/2024"}))
}

func TestStreakScenarioThreeDayRun(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	for _, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		_, _, err := s.LogMood(ctx, testUser, &LogMoodRequest{MoodID: "happy", Date: date})
		assert.NoError(t, err)
	}

	streaks, err := s.Streaks(ctx, testUser)
	assert.NoError(t, err)
	assert.Equal(t, internal.Streaks{Current: 3, Longest: 3, LastLoggedDate: "2024-01-03"}, streaks)

	insights, err := s.RunInsights(ctx, testUser)
	assert.NoError(t, err)
	assert.Len(t, insights, 1)
	assert.Contains(t, insights[0], "since January 1, 2024")
}

func TestUsersAreIsolated(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	other := &internal.User{ID: "u2", Token: "OTHER", Name: "Other"}

	_, _, err := s.LogMood(ctx, testUser, &LogMoodRequest{MoodID: "happy", Date: "2024-01-01"})
	assert.NoError(t, err)

	log, err := s.GetLog(ctx, other)
	assert.NoError(t, err)
	assert.Empty(t, log)
}
