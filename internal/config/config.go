// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting the server and terminal binaries read.
type Config struct {
	Port     string `env:"PORT" envDefault:"5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// WordsFile is a newline-delimited dictionary; empty means the embedded list.
	WordsFile   string `env:"WORDS_FILE"`
	WordLength  int    `env:"WORD_LENGTH" envDefault:"5"`
	MaxAttempts int    `env:"MAX_ATTEMPTS" envDefault:"6"`

	SessionSecret string        `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CookieName    string        `env:"COOKIE_NAME" envDefault:"wordle_session"`
	SecureCookies bool          `env:"SECURE_COOKIES" envDefault:"false"`
	ClientOrigin  string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	c, err := Parse()
	if err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Parse reads the environment without validating, for callers that apply
// their own overrides before calling Validate.
func Parse() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// Validate rejects settings no game can be played with.
func (c Config) Validate() error {
	var errs []error
	if c.WordLength <= 0 {
		errs = append(errs, fmt.Errorf("WORD_LENGTH must be positive, got %d", c.WordLength))
	}
	if c.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("MAX_ATTEMPTS must be positive, got %d", c.MaxAttempts))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL))
	}
	return errors.Join(errs...)
}
