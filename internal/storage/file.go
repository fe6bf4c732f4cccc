package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gobinda22/moodtracker/internal"
)

// FileStorage keeps every user's MoodLog in memory and flushes the whole
// set to a single JSON file through a debounced background worker, so a
// burst of log mutations costs one disk write.
type FileStorage struct {
	logs      map[string]internal.MoodLog // userID -> log
	mu        sync.RWMutex
	path      string
	saveChan  chan struct{}
	shutdown  chan struct{}
	saveDelay time.Duration
	logger    internal.Logger
}

func NewFileStorage(path string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		logs:      make(map[string]internal.MoodLog),
		path:      path,
		saveChan:  make(chan struct{}, 1),
		shutdown:  make(chan struct{}),
		saveDelay: 500 * time.Millisecond,
		logger:    logger,
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	go s.saveWorker()

	return s, nil
}

// load reads the persisted logs. A missing file starts empty; a malformed
// file is logged and replaced with an empty set rather than failing startup.
func (s *FileStorage) load() error {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var logs map[string]internal.MoodLog
	if err := json.NewDecoder(file).Decode(&logs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		s.logger.Warnf("storage: malformed mood log file %s, starting empty: %v", s.path, err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for userID, log := range logs {
		if log == nil {
			log = internal.MoodLog{}
		}
		s.logs[userID] = log
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) save() error {
	s.mu.RLock()
	logs := make(map[string]internal.MoodLog, len(s.logs))
	for userID, log := range s.logs {
		cloned := make(internal.MoodLog, len(log))
		for date, entry := range log {
			cloned[date] = entry
		}
		logs[userID] = cloned
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.path, logs)
}

// saveWorker batches save operations to avoid frequent disk writes.
func (s *FileStorage) saveWorker() {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-s.saveChan:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := s.save(); err != nil {
				s.logger.Errorf("storage: error saving mood logs: %v", err)
			}
		case <-s.shutdown:
			return
		}
	}
}

func (s *FileStorage) signalSave() {
	select {
	case s.saveChan <- struct{}{}:
	default:
	}
}

// Close stops the background worker and flushes pending data synchronously.
func (s *FileStorage) Close() error {
	close(s.shutdown)
	return s.save()
}

// --- MoodLogRepository ---

func (s *FileStorage) LoadLog(ctx context.Context, userID string) (internal.MoodLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log := make(internal.MoodLog, len(s.logs[userID]))
	for date, entry := range s.logs[userID] {
		log[date] = entry
	}
	return log, nil
}

func (s *FileStorage) SaveEntry(ctx context.Context, userID, date string, entry internal.MoodEntry) error {
	s.mu.Lock()
	if s.logs[userID] == nil {
		s.logs[userID] = internal.MoodLog{}
	}
	s.logs[userID][date] = entry
	s.mu.Unlock()

	s.signalSave()
	return nil
}

func (s *FileStorage) DeleteEntry(ctx context.Context, userID, date string) error {
	s.mu.Lock()
	delete(s.logs[userID], date)
	s.mu.Unlock()

	s.signalSave()
	return nil
}

func (s *FileStorage) GetEntry(ctx context.Context, userID, date string) (*internal.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.logs[userID][date]
	if !ok {
		return nil, ErrNotFound
	}
	return &entry, nil
}

// --- Compile-time assertions ---
var _ MoodLogRepository = (*FileStorage)(nil)
