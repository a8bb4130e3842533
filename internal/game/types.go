// internal/game/types.go
//
// Core type definitions for the puzzle engine.
// Defines:
//   - Verdict: per-letter result of a guess (correct/present/absent).
//   - Attempt: one accepted, scored guess.
//   - Status:  session state (in progress, won, lost).

package game

import "fmt"

// Verdict is the evaluation result for a single letter in a guess.
//   - Correct: letter matches the solution at this position.
//   - Present: letter occurs elsewhere in the solution and budget remains.
//   - Absent:  letter does not occur, or every occurrence is already claimed.
type Verdict uint8

const (
	Absent Verdict = iota
	Present
	Correct
)

var verdictNames = [...]string{
	Absent:  "absent",
	Present: "present",
	Correct: "correct",
}

func (v Verdict) String() string {
	if int(v) < len(verdictNames) {
		return verdictNames[v]
	}
	return fmt.Sprintf("Verdict(%d)", uint8(v))
}

// MarshalText renders the verdict by name so JSON clients see "correct" etc.
func (v Verdict) MarshalText() ([]byte, error) {
	if int(v) >= len(verdictNames) {
		return nil, fmt.Errorf("game: unknown verdict %d", uint8(v))
	}
	return []byte(verdictNames[v]), nil
}

// Attempt is an accepted guess together with its verdicts.
// Verdicts are computed once at submission and never recomputed.
type Attempt struct {
	Word     string    `json:"word"`
	Verdicts []Verdict `json:"verdicts"`
}

// Solved reports whether every verdict is Correct.
func (a Attempt) Solved() bool {
	for _, v := range a.Verdicts {
		if v != Correct {
			return false
		}
	}
	return len(a.Verdicts) > 0
}

// Status is the coarse state of a session.
type Status uint8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Terminal reports whether no further attempts are accepted.
func (s Status) Terminal() bool { return s == Won || s == Lost }

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
