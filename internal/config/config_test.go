package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "HTTP_ADDR", "PORT", "CLIENT_ORIGIN",
		"HTTP_SHUTDOWN_TIMEOUT", "WORDS_URL", "WORDS_ANSWERS_FILE", "FETCH_TIMEOUT", "DAILY_SALT", "SESSION_TTL"} {
		t.Setenv(k, "")
	}
	c, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":5175", c.HTTP.Addr)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "console", c.Log.Format)
	assert.Equal(t, 5*time.Second, c.Words.FetchTimeout)
	assert.Equal(t, 24*time.Hour, c.Session.TTL)
	assert.Empty(t, c.Words.URL)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("WORDS_URL", "http://example.test/api/fe/wordle-words")
	t.Setenv("FETCH_TIMEOUT", "250ms")
	t.Setenv("SESSION_TTL", "not-a-duration")

	c, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.HTTP.Addr)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "http://example.test/api/fe/wordle-words", c.Words.URL)
	assert.Equal(t, 250*time.Millisecond, c.Words.FetchTimeout)
	assert.Equal(t, 24*time.Hour, c.Session.TTL)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	_, err := LoadFromEnv()
	assert.Error(t, err)

	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "loud")
	_, err = LoadFromEnv()
	assert.Error(t, err)
}
