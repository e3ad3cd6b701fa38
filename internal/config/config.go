package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config holds all environment-driven settings.
//
//	HTTP_ADDR    listen address            (default ":8000")
//	LOG_LEVEL    debug|info|warn|error     (default "info")
//	DB_HOST      Postgres host             (default "localhost")
//	DB_PORT      Postgres port             (default "5432")
//	DB_USER      Postgres user             (default "tarot_user")
//	DB_PASSWORD  Postgres password         (default "tarot_pass")
//	DB_NAME      Postgres database         (default "tarot_db")
//	OLLAMA_URL   generative backend base   (default "http://localhost:11434")
//	OLLAMA_MODEL model identifier          (default "gemma2:2b")
//	LLM_TIMEOUT  per-call hard ceiling     (default "160s")
type Config struct {
	HTTPAddr    string
	LogLevel    slog.Level
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	OllamaURL   string
	OllamaModel string
	LLMTimeout  time.Duration
}

func Load() (Config, error) {
	c := Config{
		HTTPAddr:    envOr("HTTP_ADDR", ":8000"),
		DBHost:      envOr("DB_HOST", "localhost"),
		DBPort:      envOr("DB_PORT", "5432"),
		DBUser:      envOr("DB_USER", "tarot_user"),
		DBPassword:  envOr("DB_PASSWORD", "tarot_pass"),
		DBName:      envOr("DB_NAME", "tarot_db"),
		OllamaURL:   envOr("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel: envOr("OLLAMA_MODEL", "gemma2:2b"),
		LLMTimeout:  160 * time.Second,
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		c.LLMTimeout = d
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

// DSN renders the lib/pq connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
