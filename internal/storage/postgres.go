package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gobinda22/moodtracker/internal"
)

// PostgresStorage persists mood entries in a mood_entries table keyed by
// (user_id, day). The upsert gives the last-write-wins-per-date semantics
// directly.
type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

func (p *PostgresStorage) LoadLog(ctx context.Context, userID string) (internal.MoodLog, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT day, mood_id, note, recorded_at FROM mood_entries WHERE user_id = $1`, userID)
	if err != nil {
		p.logger.Errorf("failed to query mood entries: %v", err)
		return nil, err
	}
	defer rows.Close()

	log := internal.MoodLog{}
	for rows.Next() {
		var day string
		var entry internal.MoodEntry
		var recordedAt *time.Time
		if err := rows.Scan(&day, &entry.MoodID, &entry.Note, &recordedAt); err != nil {
			p.logger.Errorf("failed to scan mood entry: %v", err)
			return nil, err
		}
		if recordedAt != nil {
			entry.Timestamp = *recordedAt
		}
		log[day] = entry
	}
	return log, rows.Err()
}

func (p *PostgresStorage) SaveEntry(ctx context.Context, userID, date string, entry internal.MoodEntry) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO mood_entries (user_id, day, mood_id, note, recorded_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, day)
		 DO UPDATE SET mood_id = EXCLUDED.mood_id, note = EXCLUDED.note, recorded_at = EXCLUDED.recorded_at`,
		userID, date, entry.MoodID, entry.Note, entry.Timestamp)
	if err != nil {
		p.logger.Errorf("failed to upsert mood entry: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) DeleteEntry(ctx context.Context, userID, date string) error {
	_, err := p.pool.Exec(ctx,
		`DELETE FROM mood_entries WHERE user_id = $1 AND day = $2`, userID, date)
	if err != nil {
		p.logger.Errorf("failed to delete mood entry: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) GetEntry(ctx context.Context, userID, date string) (*internal.MoodEntry, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT mood_id, note, recorded_at FROM mood_entries WHERE user_id = $1 AND day = $2`,
		userID, date)
	var entry internal.MoodEntry
	var recordedAt *time.Time
	if err := row.Scan(&entry.MoodID, &entry.Note, &recordedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.logger.Errorf("failed to read mood entry: %v", err)
		return nil, err
	}
	if recordedAt != nil {
		entry.Timestamp = *recordedAt
	}
	return &entry, nil
}

// --- UserRepository ---
func (p *PostgresStorage) GetUserByToken(ctx context.Context, token string) (*internal.User, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, token, name FROM users WHERE token = $1`, token)
	var u internal.User
	if err := row.Scan(&u.ID, &u.Token, &u.Name); err != nil {
		p.logger.Errorf("user not found: %v", err)
		return nil, err
	}
	return &u, nil
}

// --- Compile-time assertions ---
var _ MoodLogRepository = (*PostgresStorage)(nil)
