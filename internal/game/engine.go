// internal/game/engine.go
//
// Guess scoring.
//
// Score is a pure function of (guess, solution). It works on runes so
// dictionaries with non-ASCII letters score the same way as plain A–Z.

package game

// Score evaluates guess against solution using the two-pass
// letter-frequency reservation algorithm.
//
// Pass 1:
//   - Count every solution letter.
//   - Mark exact matches Correct and take them out of the count.
//
// Pass 2:
//   - Left to right over the remaining positions: Present while the letter
//     still has budget (decrementing it), otherwise Absent.
//
// All exact matches are reserved before any Present is handed out, so a
// positional match is never starved by an earlier misplaced copy of the
// same letter (LAPLE against APPLE: the L at index 3 stays Correct).
//
// A length mismatch returns ErrLengthMismatch.
func Score(guess, solution string) ([]Verdict, error) {
	g := []rune(guess)
	s := []rune(solution)
	if len(g) != len(s) {
		return nil, ErrLengthMismatch
	}

	res := make([]Verdict, len(g))
	budget := make(map[rune]int, len(s))
	for _, r := range s {
		budget[r]++
	}

	// First pass: reserve exact matches.
	for i := range g {
		if g[i] == s[i] {
			res[i] = Correct
			budget[g[i]]--
		}
	}

	// Second pass: hand out the remaining budget.
	for i := range g {
		if res[i] == Correct {
			continue
		}
		if budget[g[i]] > 0 {
			res[i] = Present
			budget[g[i]]--
		} else {
			res[i] = Absent
		}
	}
	return res, nil
}

// mustScore is Score for callers that have already checked lengths.
func mustScore(guess, solution string) []Verdict {
	v, err := Score(guess, solution)
	if err != nil {
		panic("game: " + err.Error() + ": " + guess + " vs solution")
	}
	return v
}
