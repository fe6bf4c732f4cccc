package storage

import (
	"context"
	"sync"

	"github.com/gobinda22/moodtracker/internal"
)

// MemoryStorage is a volatile MoodLogRepository for development and tests.
type MemoryStorage struct {
	logs map[string]internal.MoodLog
	mu   sync.RWMutex
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{logs: make(map[string]internal.MoodLog)}
}

func (s *MemoryStorage) Close() error { return nil }

func (s *MemoryStorage) LoadLog(ctx context.Context, userID string) (internal.MoodLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log := make(internal.MoodLog, len(s.logs[userID]))
	for date, entry := range s.logs[userID] {
		log[date] = entry
	}
	return log, nil
}

func (s *MemoryStorage) SaveEntry(ctx context.Context, userID, date string, entry internal.MoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.logs[userID] == nil {
		s.logs[userID] = internal.MoodLog{}
	}
	s.logs[userID][date] = entry
	return nil
}

func (s *MemoryStorage) DeleteEntry(ctx context.Context, userID, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.logs[userID], date)
	return nil
}

func (s *MemoryStorage) GetEntry(ctx context.Context, userID, date string) (*internal.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.logs[userID][date]
	if !ok {
		return nil, ErrNotFound
	}
	return &entry, nil
}

// --- Compile-time assertions ---
var _ MoodLogRepository = (*MemoryStorage)(nil)
