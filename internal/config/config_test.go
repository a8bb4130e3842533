package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WORD_LENGTH", "")
	t.Setenv("MAX_ATTEMPTS", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("PORT", "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.WordLength)
	assert.Equal(t, 6, cfg.MaxAttempts)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "5175", cfg.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WORD_LENGTH", "6")
	t.Setenv("MAX_ATTEMPTS", "4")
	t.Setenv("WORDS_FILE", "/tmp/words.txt")
	t.Setenv("SESSION_TTL", "30m")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.WordLength)
	assert.Equal(t, 4, cfg.MaxAttempts)
	assert.Equal(t, "/tmp/words.txt", cfg.WordsFile)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Setenv("WORD_LENGTH", "five")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestParseDefersValidation(t *testing.T) {
	t.Setenv("MAX_ATTEMPTS", "0")
	t.Setenv("WORD_LENGTH", "0")

	_, err := Load()
	require.Error(t, err)

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Zero(t, cfg.MaxAttempts)

	// flag overrides applied afterwards make the config usable
	cfg.WordLength, cfg.MaxAttempts = 5, 5
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	c := Config{WordLength: 0, MaxAttempts: -1, SessionTTL: time.Hour}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WORD_LENGTH")
	assert.Contains(t, err.Error(), "MAX_ATTEMPTS")

	c = Config{WordLength: 5, MaxAttempts: 6, SessionTTL: time.Hour}
	assert.NoError(t, c.Validate())
}
