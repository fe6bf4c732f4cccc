package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/gobinda22/moodtracker/internal"
	"github.com/gobinda22/moodtracker/internal/analytics"
	"github.com/gobinda22/moodtracker/internal/dateutil"
	"github.com/gobinda22/moodtracker/internal/storage"
)

var validate = validator.New()

// LogMoodRequest is the payload for logging a mood. Date defaults to
// today when omitted.
type LogMoodRequest struct {
	MoodID string `json:"mood_id" validate:"required"`
	Note   string `json:"note,omitempty" validate:"omitempty,max=500"`
	Date   string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func ValidateLogMoodRequest(req *LogMoodRequest) error {
	return validate.Struct(req)
}

// MoodService owns all mutations of a user's MoodLog and re-derives the
// streak state on every change. The catalog and repository are injected
// so every operation stays deterministic under test.
type MoodService struct {
	repo    storage.MoodLogRepository
	catalog *internal.Catalog
	logger  internal.Logger
	now     func() time.Time
}

func NewMoodService(repo storage.MoodLogRepository, catalog *internal.Catalog, logger internal.Logger) *MoodService {
	return &MoodService{repo: repo, catalog: catalog, logger: logger, now: time.Now}
}

// WithClock overrides the service clock. Used in tests.
func (s *MoodService) WithClock(now func() time.Time) *MoodService {
	s.now = now
	return s
}

func (s *MoodService) Catalog() *internal.Catalog {
	return s.catalog
}

// LogMood inserts or overwrites the entry for the given date. An unknown
// mood id is treated as a caller bug: nothing is written, no error is
// surfaced, and the returned entry is nil. The returned Streaks reflect
// the log after the mutation.
func (s *MoodService) LogMood(ctx context.Context, user *internal.User, req *LogMoodRequest) (*internal.MoodEntry, internal.Streaks, error) {
	now := s.now()
	date := req.Date
	if date == "" {
		date = dateutil.FormatDate(now)
	}

	if _, ok := s.catalog.ByID(req.MoodID); !ok {
		s.logger.Warnf("logMood: unknown mood id %q for user %s, ignoring", req.MoodID, user.ID)
		streaks, err := s.Streaks(ctx, user)
		return nil, streaks, err
	}

	entry := internal.MoodEntry{
		MoodID:    req.MoodID,
		Note:      req.Note,
		Timestamp: now,
	}
	if err := s.repo.SaveEntry(ctx, user.ID, date, entry); err != nil {
		return nil, internal.Streaks{}, err
	}

	streaks, err := s.Streaks(ctx, user)
	if err != nil {
		return nil, internal.Streaks{}, err
	}
	return &entry, streaks, nil
}

// DeleteEntry removes the entry at date if present. Deleting an absent
// date is not an error.
func (s *MoodService) DeleteEntry(ctx context.Context, user *internal.User, date string) (internal.Streaks, error) {
	if err := s.repo.DeleteEntry(ctx, user.ID, date); err != nil {
		return internal.Streaks{}, err
	}
	return s.Streaks(ctx, user)
}

// GetEntry returns the entry for date, or nil when none exists.
func (s *MoodService) GetEntry(ctx context.Context, user *internal.User, date string) (*internal.MoodEntry, error) {
	entry, err := s.repo.GetEntry(ctx, user.ID, date)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

// GetLog returns the user's full mood log.
func (s *MoodService) GetLog(ctx context.Context, user *internal.User) (internal.MoodLog, error) {
	return s.repo.LoadLog(ctx, user.ID)
}

// Streaks recomputes streak state in full from the stored log.
func (s *MoodService) Streaks(ctx context.Context, user *internal.User) (internal.Streaks, error) {
	log, err := s.repo.LoadLog(ctx, user.ID)
	if err != nil {
		return internal.Streaks{}, err
	}
	return analytics.ComputeStreaks(log, s.now()), nil
}

// Frequency returns the per-mood occurrence counts in catalog order.
func (s *MoodService) Frequency(ctx context.Context, user *internal.User) ([]analytics.FrequencyRecord, error) {
	log, err := s.repo.LoadLog(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return analytics.ComputeFrequency(log, s.catalog), nil
}

// WeekdayPattern returns the mood-by-weekday analysis with its insight.
func (s *MoodService) WeekdayPattern(ctx context.Context, user *internal.User) (analytics.WeekdayPattern, error) {
	log, err := s.repo.LoadLog(ctx, user.ID)
	if err != nil {
		return analytics.WeekdayPattern{}, err
	}
	return analytics.ComputeWeekdayPattern(log, s.catalog), nil
}

// TimeOfDayPattern returns the mood-by-time-of-day analysis with its insight.
func (s *MoodService) TimeOfDayPattern(ctx context.Context, user *internal.User) (analytics.TimeOfDayPattern, error) {
	log, err := s.repo.LoadLog(ctx, user.ID)
	if err != nil {
		return analytics.TimeOfDayPattern{}, err
	}
	return analytics.ComputeTimeOfDayPattern(log, s.catalog), nil
}

// RunInsights returns one sentence per consecutive same-mood span.
func (s *MoodService) RunInsights(ctx context.Context, user *internal.User) ([]string, error) {
	log, err := s.repo.LoadLog(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return analytics.ComputeRuns(log, s.catalog), nil
}

// Summary returns the aggregate mood score with badges.
func (s *MoodService) Summary(ctx context.Context, user *internal.User) (analytics.Aggregate, error) {
	log, err := s.repo.LoadLog(ctx, user.ID)
	if err != nil {
		return analytics.Aggregate{}, err
	}
	return analytics.ComputeAggregate(log, s.catalog), nil
}
