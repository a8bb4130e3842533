// internal/game/session.go
//
// Session is the live game: one Puzzle, the accepted attempts, the input
// buffer, a notification line, and the status.
//
// State transitions:
//   - InProgress → Won  when an accepted guess equals the solution.
//   - InProgress → Lost when the attempt ceiling is reached without a win.
//   - Won|Lost → InProgress on reset (explicit, or the next Submit).
//
// A Session is not safe for concurrent use; callers serialize events.

package game

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/go-puzzle/internal/words"
)

// Button labels for the single action button.
const (
	LabelSubmit  = "Submit"
	LabelNewGame = "New game"
)

// Action says what a Submit did.
type Action uint8

const (
	Rejected Action = iota // not a dictionary word; nothing changed but the notification
	Accepted               // scored and appended
	Reset                  // the session was terminal and started over
)

func (a Action) String() string {
	switch a {
	case Rejected:
		return "rejected"
	case Accepted:
		return "accepted"
	case Reset:
		return "reset"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Outcome describes the effect of one Submit.
type Outcome struct {
	Action  Action
	Attempt *Attempt // set when Action == Accepted
	Status  Status   // status after the event
}

// Session owns the puzzle and the attempts made against it.
type Session struct {
	src          Source
	puzzle       *Puzzle
	attempts     []Attempt
	input        string
	notification string
	status       Status
}

// NewSession starts a session on a fresh puzzle from src.
func NewSession(src Source) *Session {
	return NewSessionWith(src, src.New())
}

// NewSessionWith starts a session on p; later resets draw from src.
func NewSessionWith(src Source, p *Puzzle) *Session {
	return &Session{src: src, puzzle: p}
}

// InputChanged stores raw as the input buffer, uppercased and cut to the
// word length.
func (s *Session) InputChanged(raw string) {
	s.input = words.Truncate(raw, s.puzzle.WordLength())
}

// Input is the current input buffer.
func (s *Session) Input() string { return s.input }

// SubmitInput submits the current input buffer.
func (s *Session) SubmitInput() Outcome { return s.Submit(s.input) }

// Submit processes one submit event.
//
// After a terminal state it resets the session instead of guessing.
// Otherwise an unknown word only sets the notification; a known word is
// scored, appended, and the end-of-game conditions are evaluated.
func (s *Session) Submit(raw string) Outcome {
	if s.status.Terminal() {
		s.Reset()
		return Outcome{Action: Reset, Status: s.status}
	}

	guess := words.Normalize(raw)
	if !s.puzzle.IsValid(guess) {
		if n := words.Len(guess); n != s.puzzle.WordLength() {
			s.notification = fmt.Sprintf("Guess must be %d letters", s.puzzle.WordLength())
		} else {
			s.notification = fmt.Sprintf("%s is not in the word list", guess)
		}
		return Outcome{Action: Rejected, Status: s.status}
	}

	a := Attempt{Word: guess, Verdicts: mustScore(guess, s.puzzle.Solution())}
	s.attempts = append(s.attempts, a)
	s.input = ""
	s.notification = ""

	switch {
	case a.Solved():
		s.status = Won
		s.notification = fmt.Sprintf("Well done! Solved in %d/%d.", len(s.attempts), s.puzzle.MaxAttempts())
	case len(s.attempts) >= s.puzzle.MaxAttempts():
		s.status = Lost
		s.notification = fmt.Sprintf("Out of attempts. The word was %s.", s.puzzle.Solution())
	}
	return Outcome{Action: Accepted, Attempt: &a, Status: s.status}
}

// Reset replaces the puzzle with a fresh one and clears all play state.
func (s *Session) Reset() {
	s.puzzle = s.src.New()
	s.attempts = nil
	s.input = ""
	s.notification = ""
	s.status = InProgress
}

// Attempts returns a copy of the accepted attempts in submission order.
func (s *Session) Attempts() []Attempt {
	out := make([]Attempt, len(s.attempts))
	for i, a := range s.attempts {
		out[i] = Attempt{Word: a.Word, Verdicts: append([]Verdict(nil), a.Verdicts...)}
	}
	return out
}

// Notification is the user-facing message from the last event, or "".
func (s *Session) Notification() string { return s.notification }

// Status is the current game status.
func (s *Session) Status() Status { return s.status }

// ButtonLabel is what the action button should read.
func (s *Session) ButtonLabel() string {
	if s.status.Terminal() {
		return LabelNewGame
	}
	return LabelSubmit
}

// WordLength of the current puzzle.
func (s *Session) WordLength() int { return s.puzzle.WordLength() }

// MaxAttempts of the current puzzle.
func (s *Session) MaxAttempts() int { return s.puzzle.MaxAttempts() }

// Solution reveals the hidden word once the game is over.
func (s *Session) Solution() (string, bool) {
	if !s.status.Terminal() {
		return "", false
	}
	return s.puzzle.Solution(), true
}

// View is a plain-data snapshot for renderers.
type View struct {
	Status       Status    `json:"status"`
	ButtonLabel  string    `json:"buttonLabel"`
	Notification string    `json:"notification"`
	Input        string    `json:"input"`
	WordLength   int       `json:"wordLength"`
	MaxAttempts  int       `json:"maxAttempts"`
	Attempts     []Attempt `json:"attempts"`
	Solution     string    `json:"solution,omitempty"`
}

// Snapshot copies everything a renderer needs out of the session.
func (s *Session) Snapshot() View {
	sol, _ := s.Solution()
	return View{
		Status:       s.status,
		ButtonLabel:  s.ButtonLabel(),
		Notification: s.notification,
		Input:        s.input,
		WordLength:   s.WordLength(),
		MaxAttempts:  s.MaxAttempts(),
		Attempts:     s.Attempts(),
		Solution:     sol,
	}
}
