// Package tty is a line-oriented terminal front end for a game.Session.
//
// It owns only presentation: it reads a line, hands it to the session as
// the input buffer, submits, and redraws the board from the session's
// snapshot. Verdict colors live here and nowhere else.
package tty

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-puzzle/internal/game"
)

// black on green / black on yellow / white on gray
const (
	correctFormat = "\x1B[42m\x1B[30m %c \x1B[0m"
	presentFormat = "\x1B[43m\x1B[30m %c \x1B[0m"
	absentFormat  = "\x1B[100m\x1B[97m %c \x1B[0m"
)

// plain markers when colors are off
const (
	correctPlain = "[%c]"
	presentPlain = "(%c)"
	absentPlain  = " %c "
)

// QuitCommand ends the loop.
const QuitCommand = ":q"

// Options controls rendering.
type Options struct {
	Color bool
	Log   zerolog.Logger
}

// Play runs the read-submit-render loop until EOF, QuitCommand, or ctx is
// done. Lines are read on a separate goroutine so cancellation does not
// wait for the next line of input.
func Play(ctx context.Context, sess *game.Session, in io.Reader, out io.Writer, opts Options) error {
	lines, readErr := readLines(ctx, in)
	Render(out, sess.Snapshot(), opts.Color)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s > ", prompt(sess))

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return <-readErr
			}
			line = l
		}
		if strings.TrimSpace(line) == QuitCommand {
			return nil
		}

		sess.InputChanged(line)
		res := sess.SubmitInput()
		opts.Log.Debug().
			Str("action", res.Action.String()).
			Str("status", res.Status.String()).
			Msg("submit")

		Render(out, sess.Snapshot(), opts.Color)
	}
}

// readLines scans in until EOF or ctx is done. The error channel receives
// the scanner's error before lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}

func prompt(sess *game.Session) string {
	if sess.Status().Terminal() {
		return "[" + sess.ButtonLabel() + ": press enter, " + QuitCommand + " to quit]"
	}
	return fmt.Sprintf("[%d/%d]", len(sess.Attempts())+1, sess.MaxAttempts())
}

// Render draws the board: one row per attempt, blank rows for the attempts
// left, the letters used so far, and the notification.
func Render(out io.Writer, v game.View, color bool) {
	var b strings.Builder
	b.WriteString("\n")
	for _, a := range v.Attempts {
		b.WriteString("  ")
		b.WriteString(Row(a, color))
		b.WriteString("\n")
	}
	blank := "  " + strings.Repeat(" . ", v.WordLength) + "\n"
	for i := len(v.Attempts); i < v.MaxAttempts; i++ {
		b.WriteString(blank)
	}

	if used := Letters(v.Attempts); len(used) > 0 {
		b.WriteString("\n  ")
		for _, l := range used {
			b.WriteString(tile(l.Letter, l.Verdict, color))
		}
		b.WriteString("\n")
	}
	if v.Notification != "" {
		b.WriteString("\n  ")
		b.WriteString(v.Notification)
		b.WriteString("\n")
	}
	io.WriteString(out, b.String())
}

// Row renders one attempt as colored (or marked) tiles.
func Row(a game.Attempt, color bool) string {
	var b strings.Builder
	for i, r := range []rune(a.Word) {
		b.WriteString(tile(r, a.Verdicts[i], color))
	}
	return b.String()
}

func tile(r rune, v game.Verdict, color bool) string {
	var f string
	switch {
	case v == game.Correct && color:
		f = correctFormat
	case v == game.Correct:
		f = correctPlain
	case v == game.Present && color:
		f = presentFormat
	case v == game.Present:
		f = presentPlain
	case color:
		f = absentFormat
	default:
		f = absentPlain
	}
	return fmt.Sprintf(f, r)
}

// LetterState is the best verdict a letter has earned so far.
type LetterState struct {
	Letter  rune
	Verdict game.Verdict
}

// Letters summarizes every guessed letter with its best verdict
// (Correct > Present > Absent), sorted by letter.
func Letters(attempts []game.Attempt) []LetterState {
	best := map[rune]game.Verdict{}
	for _, a := range attempts {
		for i, r := range []rune(a.Word) {
			if v, ok := best[r]; !ok || a.Verdicts[i] > v {
				best[r] = a.Verdicts[i]
			}
		}
	}
	out := make([]LetterState, 0, len(best))
	for r, v := range best {
		out = append(out, LetterState{Letter: r, Verdict: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Letter < out[j].Letter })
	return out
}
