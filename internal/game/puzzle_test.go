package game

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDict = []string{"APPLE", "CRANE", "LAPLE", "SLATE", "TRACE", "BRICK", "PLANT"}

func TestNewPuzzleDrawsFromDictionary(t *testing.T) {
	p, err := NewPuzzle(testDict, 5, 6)
	require.NoError(t, err)
	assert.Contains(t, testDict, p.Solution())
	assert.True(t, p.IsValid(p.Solution()))
	assert.Equal(t, 5, p.WordLength())
	assert.Equal(t, 6, p.MaxAttempts())
}

func TestNewPuzzleConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		dict     []string
		length   int
		attempts int
		want     error
	}{
		{"empty", nil, 5, 6, ErrEmptyDictionary},
		{"wrong length", []string{"APPLE", "PEAR"}, 5, 6, ErrWordLength},
		{"zero length", testDict, 0, 6, ErrAttempts},
		{"zero attempts", testDict, 5, 0, ErrAttempts},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPuzzle(tt.dict, tt.length, tt.attempts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var cfgErr *ConfigError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestConfigErrorNamesWord(t *testing.T) {
	_, err := NewPuzzle([]string{"APPLE", "PEAR"}, 5, 6)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"PEAR"`)
}

func TestIsValidNormalizesCase(t *testing.T) {
	p, err := NewPuzzle([]string{"apple", "Crane"}, 5, 6)
	require.NoError(t, err)
	assert.True(t, p.IsValid("APPLE"))
	assert.True(t, p.IsValid("apple"))
	assert.True(t, p.IsValid(" crane "))
	assert.False(t, p.IsValid("PLANT"))
	assert.False(t, p.IsValid("APPL"))
}

func TestGeneratorDeterministicWithRandom(t *testing.T) {
	// An all-zero entropy source always draws index 0.
	g, err := NewGenerator(testDict, 5, 6, WithRandom(bytes.NewReader(make([]byte, 64))))
	require.NoError(t, err)
	assert.Equal(t, "APPLE", g.New().Solution())
}

func TestGeneratorDedupes(t *testing.T) {
	g, err := NewGenerator([]string{"apple", "APPLE", "crane"}, 5, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())
}

func TestGeneratorWithSolution(t *testing.T) {
	g, err := NewGenerator(testDict, 5, 6)
	require.NoError(t, err)

	p, err := g.WithSolution("crane")
	require.NoError(t, err)
	assert.Equal(t, "CRANE", p.Solution())

	_, err = g.WithSolution("ZEBRA")
	assert.ErrorIs(t, err, ErrNotInDictionary)
}

func TestGeneratorAtWraps(t *testing.T) {
	g, err := NewGenerator(testDict, 5, 6)
	require.NoError(t, err)
	assert.Equal(t, "APPLE", g.At(0).Solution())
	assert.Equal(t, "APPLE", g.At(len(testDict)).Solution())
	assert.Equal(t, "PLANT", g.At(-1).Solution())
}

func TestGeneratorDrawsEveryWord(t *testing.T) {
	g, err := NewGenerator(testDict, 5, 6)
	require.NoError(t, err)
	seen := map[string]bool{}
	for i := 0; i < 500 && len(seen) < len(testDict); i++ {
		seen[g.New().Solution()] = true
	}
	assert.Len(t, seen, len(testDict))
}
