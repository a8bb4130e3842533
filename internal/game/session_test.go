package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource hands out puzzles with the given solutions in order.
type seqSource struct {
	g         *Generator
	solutions []string
	next      int
}

func (s *seqSource) New() *Puzzle {
	p, err := s.g.WithSolution(s.solutions[s.next%len(s.solutions)])
	if err != nil {
		panic(err)
	}
	s.next++
	return p
}

func newTestSession(t *testing.T, maxAttempts int, solutions ...string) (*Session, *seqSource) {
	t.Helper()
	g, err := NewGenerator(testDict, 5, maxAttempts)
	require.NoError(t, err)
	src := &seqSource{g: g, solutions: solutions}
	return NewSession(src), src
}

func TestSessionInitialState(t *testing.T) {
	s, _ := newTestSession(t, 6, "APPLE")
	assert.Equal(t, InProgress, s.Status())
	assert.Empty(t, s.Attempts())
	assert.Empty(t, s.Notification())
	assert.Equal(t, LabelSubmit, s.ButtonLabel())
	_, revealed := s.Solution()
	assert.False(t, revealed)
}

func TestSessionInputChanged(t *testing.T) {
	s, _ := newTestSession(t, 6, "APPLE")
	s.InputChanged("cranes")
	assert.Equal(t, "CRANE", s.Input())
	s.InputChanged("cr")
	assert.Equal(t, "CR", s.Input())
}

func TestSessionRejectsUnknownWord(t *testing.T) {
	s, _ := newTestSession(t, 6, "APPLE")
	s.InputChanged("zzzzz")

	out := s.SubmitInput()
	assert.Equal(t, Rejected, out.Action)
	assert.Nil(t, out.Attempt)
	assert.Empty(t, s.Attempts())
	assert.Equal(t, InProgress, s.Status())
	assert.Equal(t, "ZZZZZ is not in the word list", s.Notification())
	assert.Equal(t, "ZZZZZ", s.Input(), "rejected input stays in the buffer")

	// The player can retry immediately.
	out = s.Submit("crane")
	assert.Equal(t, Accepted, out.Action)
	assert.Empty(t, s.Notification())
}

func TestSessionRejectsShortWord(t *testing.T) {
	s, _ := newTestSession(t, 6, "APPLE")
	out := s.Submit("APP")
	assert.Equal(t, Rejected, out.Action)
	assert.Equal(t, "Guess must be 5 letters", s.Notification())
}

func TestSessionWin(t *testing.T) {
	s, _ := newTestSession(t, 6, "APPLE")
	s.Submit("CRANE")
	s.InputChanged("apple")
	out := s.SubmitInput()

	assert.Equal(t, Accepted, out.Action)
	assert.Equal(t, Won, out.Status)
	assert.Equal(t, Won, s.Status())
	require.Len(t, s.Attempts(), 2)
	last := s.Attempts()[1]
	assert.True(t, last.Solved())
	assert.Equal(t, []Verdict{C, C, C, C, C}, last.Verdicts)
	assert.Equal(t, "Well done! Solved in 2/6.", s.Notification())
	assert.Equal(t, LabelNewGame, s.ButtonLabel())
	assert.Empty(t, s.Input())

	sol, revealed := s.Solution()
	assert.True(t, revealed)
	assert.Equal(t, "APPLE", sol)
}

func TestSessionLoss(t *testing.T) {
	s, _ := newTestSession(t, 3, "APPLE")
	for _, w := range []string{"CRANE", "SLATE", "TRACE"} {
		out := s.Submit(w)
		require.Equal(t, Accepted, out.Action)
	}
	assert.Equal(t, Lost, s.Status())
	assert.Len(t, s.Attempts(), 3)
	assert.Contains(t, s.Notification(), "APPLE")
	assert.Equal(t, LabelNewGame, s.ButtonLabel())
}

func TestSessionWinOnLastAttempt(t *testing.T) {
	s, _ := newTestSession(t, 2, "APPLE")
	s.Submit("CRANE")
	out := s.Submit("APPLE")
	assert.Equal(t, Won, out.Status)
}

func TestSessionScoresDuplicateLetters(t *testing.T) {
	s, _ := newTestSession(t, 6, "APPLE")
	out := s.Submit("LAPLE")
	require.NotNil(t, out.Attempt)
	assert.Equal(t, []Verdict{A, P, C, C, C}, out.Attempt.Verdicts)
}

func TestSessionSubmitAfterTerminalResets(t *testing.T) {
	s, src := newTestSession(t, 6, "APPLE", "CRANE")
	s.Submit("APPLE")
	require.Equal(t, Won, s.Status())

	out := s.Submit("SLATE")
	assert.Equal(t, Reset, out.Action)
	assert.Equal(t, InProgress, s.Status())
	assert.Empty(t, s.Attempts())
	assert.Empty(t, s.Notification())
	assert.Equal(t, LabelSubmit, s.ButtonLabel())
	assert.Equal(t, 2, src.next, "reset draws a new puzzle")

	// The fresh puzzle is playable.
	out = s.Submit("CRANE")
	assert.Equal(t, Won, out.Status)
}

func TestSessionExplicitReset(t *testing.T) {
	s, _ := newTestSession(t, 6, "APPLE", "CRANE")
	s.Submit("SLATE")
	s.InputChanged("br")
	s.Reset()
	assert.Empty(t, s.Attempts())
	assert.Empty(t, s.Input())
	assert.Equal(t, InProgress, s.Status())
	assert.Equal(t, Won, s.Submit("CRANE").Status)
}

func TestSessionStatusTransitions(t *testing.T) {
	s, _ := newTestSession(t, 2, "APPLE", "CRANE", "APPLE")
	var seen []Status
	record := func() { seen = append(seen, s.Status()) }

	record()
	s.Submit("SLATE")
	record()
	s.Submit("TRACE")
	record() // lost
	s.Submit("CRANE")
	record() // reset
	s.Submit("CRANE")
	record() // won

	assert.Equal(t, []Status{InProgress, InProgress, Lost, InProgress, Won}, seen)

	allowed := map[[2]Status]bool{
		{InProgress, InProgress}: true,
		{InProgress, Won}:        true,
		{InProgress, Lost}:       true,
		{Won, InProgress}:        true,
		{Lost, InProgress}:       true,
	}
	for i := 1; i < len(seen); i++ {
		assert.True(t, allowed[[2]Status{seen[i-1], seen[i]}], "transition %v -> %v", seen[i-1], seen[i])
	}
}

func TestSessionAttemptsAreCopies(t *testing.T) {
	s, _ := newTestSession(t, 6, "APPLE")
	s.Submit("CRANE")
	a := s.Attempts()
	a[0].Verdicts[0] = Correct
	a[0].Word = "XXXXX"
	assert.Equal(t, "CRANE", s.Attempts()[0].Word)
	assert.Equal(t, Absent, s.Attempts()[0].Verdicts[0])
}

func TestSessionSnapshot(t *testing.T) {
	s, _ := newTestSession(t, 1, "APPLE")
	v := s.Snapshot()
	assert.Empty(t, v.Solution)
	assert.Equal(t, 5, v.WordLength)
	assert.Equal(t, 1, v.MaxAttempts)

	s.Submit("CRANE")
	v = s.Snapshot()
	assert.Equal(t, Lost, v.Status)
	assert.Equal(t, "APPLE", v.Solution)
	assert.Equal(t, LabelNewGame, v.ButtonLabel)
	assert.Len(t, v.Attempts, 1)
}
