package game

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDictionary means there is nothing to draw a solution from.
	ErrEmptyDictionary = errors.New("dictionary is empty")
	// ErrWordLength means a dictionary word does not have the configured length.
	ErrWordLength = errors.New("dictionary word has wrong length")
	// ErrAttempts means the word length or attempt ceiling is not positive.
	ErrAttempts = errors.New("word length and max attempts must be positive")
	// ErrNotInDictionary means a fixed solution is not a dictionary word.
	ErrNotInDictionary = errors.New("solution not in dictionary")

	// ErrLengthMismatch is returned by Score when guess and solution differ
	// in length. It indicates a caller bug, never a player mistake.
	ErrLengthMismatch = errors.New("guess and solution lengths differ")
)

// ConfigError reports a puzzle that cannot be constructed.
// It is fatal: without a valid word pool there is no game.
type ConfigError struct {
	Word string // offending word, if any
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Word != "" {
		return fmt.Sprintf("game config: %v: %q", e.Err, e.Word)
	}
	return "game config: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error { return e.Err }
