// internal/game/puzzle.go
//
// Puzzle construction and dictionary membership.
//
// A Generator validates a dictionary once and then hands out puzzles that
// share its (read-only) word set. Each Puzzle is immutable: a reset builds a
// new one instead of changing the old.

package game

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/robalobadob/wordle/apps/go-puzzle/internal/words"
)

// Puzzle is one hidden word plus the rules it is played under.
type Puzzle struct {
	solution    string
	wordLength  int
	maxAttempts int
	dict        map[string]struct{}
}

// Solution returns the hidden word.
func (p *Puzzle) Solution() string { return p.solution }

// WordLength is the length, in runes, of the solution and every guess.
func (p *Puzzle) WordLength() int { return p.wordLength }

// MaxAttempts is the ceiling on accepted guesses.
func (p *Puzzle) MaxAttempts() int { return p.maxAttempts }

// IsValid reports whether word is in the dictionary, after normalizing it
// to the dictionary's case convention.
func (p *Puzzle) IsValid(word string) bool {
	_, ok := p.dict[words.Normalize(word)]
	return ok
}

// Source hands out fresh puzzles. Sessions use it on reset.
type Source interface {
	New() *Puzzle
}

// Generator is a validated dictionary that produces puzzles.
type Generator struct {
	list        []string
	dict        map[string]struct{}
	wordLength  int
	maxAttempts int
	rand        io.Reader
}

// GeneratorOption customizes a Generator.
type GeneratorOption func(*Generator)

// WithRandom sets the entropy source used to draw solutions.
// Defaults to crypto/rand.
func WithRandom(r io.Reader) GeneratorOption {
	return func(g *Generator) { g.rand = r }
}

// NewGenerator validates dictionary against wordLength and maxAttempts.
// Words are normalized before checking, so mixed-case input is accepted.
// Any failure is a *ConfigError.
func NewGenerator(dictionary []string, wordLength, maxAttempts int, opts ...GeneratorOption) (*Generator, error) {
	if wordLength <= 0 || maxAttempts <= 0 {
		return nil, &ConfigError{Err: ErrAttempts}
	}
	if len(dictionary) == 0 {
		return nil, &ConfigError{Err: ErrEmptyDictionary}
	}

	g := &Generator{
		list:        make([]string, 0, len(dictionary)),
		dict:        make(map[string]struct{}, len(dictionary)),
		wordLength:  wordLength,
		maxAttempts: maxAttempts,
		rand:        rand.Reader,
	}
	for _, w := range dictionary {
		n := words.Normalize(w)
		if words.Len(n) != wordLength {
			return nil, &ConfigError{Word: w, Err: ErrWordLength}
		}
		if _, dup := g.dict[n]; dup {
			continue
		}
		g.dict[n] = struct{}{}
		g.list = append(g.list, n)
	}
	for _, o := range opts {
		o(g)
	}
	return g, nil
}

// NewPuzzle validates dictionary and draws a random solution from it.
func NewPuzzle(dictionary []string, wordLength, maxAttempts int, opts ...GeneratorOption) (*Puzzle, error) {
	g, err := NewGenerator(dictionary, wordLength, maxAttempts, opts...)
	if err != nil {
		return nil, err
	}
	return g.New(), nil
}

// New returns a puzzle with a solution drawn uniformly at random.
func (g *Generator) New() *Puzzle {
	return g.puzzle(g.list[g.index()])
}

// WithSolution returns a puzzle with a fixed solution (daily mode, tests).
// The solution must be a dictionary word.
func (g *Generator) WithSolution(word string) (*Puzzle, error) {
	n := words.Normalize(word)
	if _, ok := g.dict[n]; !ok {
		return nil, &ConfigError{Word: word, Err: ErrNotInDictionary}
	}
	return g.puzzle(n), nil
}

// At returns the puzzle whose solution is the i-th dictionary word,
// wrapping i into range.
func (g *Generator) At(i int) *Puzzle {
	n := len(g.list)
	return g.puzzle(g.list[((i%n)+n)%n])
}

// Size is the number of distinct dictionary words.
func (g *Generator) Size() int { return len(g.list) }

// WordLength is the configured word length.
func (g *Generator) WordLength() int { return g.wordLength }

// MaxAttempts is the configured attempt ceiling.
func (g *Generator) MaxAttempts() int { return g.maxAttempts }

func (g *Generator) puzzle(solution string) *Puzzle {
	return &Puzzle{
		solution:    solution,
		wordLength:  g.wordLength,
		maxAttempts: g.maxAttempts,
		dict:        g.dict,
	}
}

// index draws a uniform index into g.list.
// A failing entropy source is unrecoverable.
func (g *Generator) index() int {
	n, err := rand.Int(g.rand, big.NewInt(int64(len(g.list))))
	if err != nil {
		panic(fmt.Sprintf("game: draw solution: %v", err))
	}
	return int(n.Int64())
}
