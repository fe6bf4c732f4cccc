package storage

import (
	"context"
	"errors"

	"github.com/gobinda22/moodtracker/internal"
)

// ErrNotFound is returned when no entry exists for the requested date.
var ErrNotFound = errors.New("storage: entry not found")

// MoodLogRepository persists one MoodLog per user. Writes are
// last-write-wins per (user, date); implementations must tolerate
// malformed stored content by falling back to an empty log rather than
// failing the whole application.
type MoodLogRepository interface {
	LoadLog(ctx context.Context, userID string) (internal.MoodLog, error)
	SaveEntry(ctx context.Context, userID, date string, entry internal.MoodEntry) error
	DeleteEntry(ctx context.Context, userID, date string) error
	GetEntry(ctx context.Context, userID, date string) (*internal.MoodEntry, error)
	Close() error
}

// AuthProvider validates bearer tokens against a local or remote source.
type AuthProvider interface {
	ValidateTokenLocal(token string) (*internal.User, error)
	ValidateTokenRemote(ctx context.Context, token string) (*internal.User, error)
}
