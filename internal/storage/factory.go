package storage

import (
	"fmt"

	"github.com/gobinda22/moodtracker/internal"
	"github.com/gobinda22/moodtracker/internal/config"
)

// NewRepository builds the MoodLogRepository named by the config's
// storage backend.
func NewRepository(cfg *config.Config, logger internal.Logger) (MoodLogRepository, error) {
	switch cfg.Backend {
	case "file":
		return NewFileStorage(cfg.MoodsFile, logger)
	case "postgres":
		return NewPostgresStorage(cfg.PostgresDSN, logger)
	case "redis":
		return NewRedisStorage(cfg.RedisAddr, logger)
	case "memory":
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}
