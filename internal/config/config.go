package config

import (
	"errors"
	"os"
	"sync"
)

type Config struct {
	Env         string
	LogLevel    string
	Port        string
	Backend     string
	MoodsFile   string
	CatalogFile string
	PostgresDSN string
	RedisAddr   string
	APIToken    string
	AuthURL     string
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = loadDotEnv()
		cfg = &Config{
			Env:         getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Port:        getEnv("PORT", "8088"),
			Backend:     getEnv("STORAGE_BACKEND", "file"),
			MoodsFile:   getEnv("MOODS_FILE", "data/mood_logs.json"),
			CatalogFile: getEnv("CATALOG_FILE", ""),
			PostgresDSN: getEnv("POSTGRES_DSN", ""),
			RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
			APIToken:    getEnv("API_TOKEN", "MOCK-TOKEN"),
			AuthURL:     getEnv("AUTH_SERVICE_URL", ""),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	if c.Backend == "postgres" && c.PostgresDSN == "" {
		return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
	}
	if c.Backend == "file" && c.MoodsFile == "" {
		return errors.New("File storage requires MOODS_FILE to be set")
	}
	if c.Backend == "redis" && c.RedisAddr == "" {
		return errors.New("Redis storage requires REDIS_ADDR to be set")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.Env != "development" && c.AuthURL == "" {
		return errors.New("AUTH_SERVICE_URL is required outside development")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadDotEnv() error {
	if _, err := os.Stat(".env"); err == nil {
		data, err := os.ReadFile(".env")
		if err != nil {
			return err
		}
		for _, l := range splitLines(string(data)) {
			if len(l) == 0 || l[0] == '#' {
				continue
			}
			kv := splitKV(l)
			if len(kv) == 2 {
				os.Setenv(kv[0], kv[1])
			}
		}
	}
	return nil
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, c := range s {
		if c == '\n' || c == '\r' {
			if i > start {
				lines = append(lines, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func splitKV(s string) []string {
	for i, c := range s {
		if c == '=' {
			return []string{s[:i], s[i+1:]}
		}
	}
	return nil
}
