package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gobinda22/moodtracker/internal"
)

// RedisStorage keeps each user's MoodLog in one Redis hash: field = date
// key, value = JSON-encoded entry. HSET per date gives last-write-wins
// without read-modify-write.
type RedisStorage struct {
	client *redis.Client
	prefix string
	logger internal.Logger
}

func NewRedisStorage(addr string, logger internal.Logger) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Errorf("failed to connect to redis at %s: %v", addr, err)
		return nil, err
	}
	return &RedisStorage{client: client, prefix: "mood:log", logger: logger}, nil
}

// NewRedisStorageWithClient wraps an existing client. Used in tests.
func NewRedisStorageWithClient(client *redis.Client, logger internal.Logger) *RedisStorage {
	return &RedisStorage{client: client, prefix: "mood:log", logger: logger}
}

func (r *RedisStorage) key(userID string) string {
	return fmt.Sprintf("%s:%s", r.prefix, userID)
}

func (r *RedisStorage) Close() error {
	return r.client.Close()
}

func (r *RedisStorage) LoadLog(ctx context.Context, userID string) (internal.MoodLog, error) {
	fields, err := r.client.HGetAll(ctx, r.key(userID)).Result()
	if err != nil {
		r.logger.Errorf("failed to load mood log: %v", err)
		return nil, err
	}

	log := internal.MoodLog{}
	for date, raw := range fields {
		var entry internal.MoodEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			// A corrupt field must not poison the whole log.
			r.logger.Warnf("storage: skipping malformed entry for %s/%s: %v", userID, date, err)
			continue
		}
		log[date] = entry
	}
	return log, nil
}

func (r *RedisStorage) SaveEntry(ctx context.Context, userID, date string, entry internal.MoodEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := r.client.HSet(ctx, r.key(userID), date, raw).Err(); err != nil {
		r.logger.Errorf("failed to save mood entry: %v", err)
		return err
	}
	return nil
}

func (r *RedisStorage) DeleteEntry(ctx context.Context, userID, date string) error {
	if err := r.client.HDel(ctx, r.key(userID), date).Err(); err != nil {
		r.logger.Errorf("failed to delete mood entry: %v", err)
		return err
	}
	return nil
}

func (r *RedisStorage) GetEntry(ctx context.Context, userID, date string) (*internal.MoodEntry, error) {
	raw, err := r.client.HGet(ctx, r.key(userID), date).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		r.logger.Errorf("failed to read mood entry: %v", err)
		return nil, err
	}
	var entry internal.MoodEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		r.logger.Warnf("storage: malformed entry for %s/%s: %v", userID, date, err)
		return nil, ErrNotFound
	}
	return &entry, nil
}

// --- Compile-time assertions ---
var _ MoodLogRepository = (*RedisStorage)(nil)
