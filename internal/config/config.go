// apps/go-board/internal/config/config.go
//
// Runtime settings, read from the environment once in main
// (after godotenv has loaded any .env file) and passed down.

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config describes all runtime settings.
type Config struct {
	Log struct {
		Level  string // zerolog level name
		Format string // console|json
		File   string // play mode only; empty discards logs
	}

	HTTP struct {
		Addr            string
		ClientOrigin    string
		ShutdownTimeout time.Duration
	}

	Words struct {
		URL          string        // remote JSON word endpoint; empty = in-process list
		AnswersFile  string        // overrides the embedded list
		FetchTimeout time.Duration // single-attempt fetch budget
		DailySalt    string
	}

	Session struct {
		TTL time.Duration // idle sessions older than this are pruned
	}
}

// LoadFromEnv reads and validates the configuration.
func LoadFromEnv() (Config, error) {
	var c Config

	c.Log.Level = getEnv("LOG_LEVEL", "info")
	c.Log.Format = getEnv("LOG_FORMAT", "console")
	c.Log.File = getEnv("LOG_FILE", "")

	c.HTTP.Addr = getEnv("HTTP_ADDR", ":"+getEnv("PORT", "5175"))
	c.HTTP.ClientOrigin = getEnv("CLIENT_ORIGIN", "http://localhost:5173")
	c.HTTP.ShutdownTimeout = getDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second)

	c.Words.URL = getEnv("WORDS_URL", "")
	c.Words.AnswersFile = getEnv("WORDS_ANSWERS_FILE", "")
	c.Words.FetchTimeout = getDuration("FETCH_TIMEOUT", 5*time.Second)
	c.Words.DailySalt = getEnv("DAILY_SALT", "local_dev_salt")

	c.Session.TTL = getDuration("SESSION_TTL", 24*time.Hour)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("unsupported LOG_LEVEL=%q: %w", c.Log.Level, err)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want console|json)", c.Log.Format)
	}
	if c.HTTP.Addr == "" {
		return errors.New("HTTP addr is empty")
	}
	if c.Words.FetchTimeout <= 0 {
		return errors.New("FETCH_TIMEOUT must be positive")
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
