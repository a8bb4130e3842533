// internal/words/words.go
//
// Dictionary loading and text normalization shared by the game core and its
// front ends.
//
// Responsibilities:
//   - Load a newline-delimited word list from a file or the embedded default.
//   - Normalize words and raw input the same way (NFC, uppercase).
//   - Keep only letter-only words of the configured length, de-duplicated.
//
// Word list format:
//   - One word per line; blank lines and lines starting with '#' are skipped.
//   - Case does not matter; everything is stored uppercase.
//
// Length is counted in runes (code points), so lists with diacritics work
// as long as the player types the same composed characters.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/robalobadob/wordle/apps/go-puzzle/assets"
)

// Stats describes what a load kept and dropped.
type Stats struct {
	Kept       int // words accepted into the list
	WrongShape int // lines dropped for length or non-letter runes
	Duplicates int // lines dropped because the word was already present
}

// Normalize maps s onto the dictionary's case convention:
// surrounding space trimmed, NFC composed, uppercased.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = norm.NFC.String(s)
	return cases.Upper(language.Und).String(s)
}

// Truncate normalizes s and cuts it to at most n runes.
// This is the input-box rule: the buffer never grows past the word length.
func Truncate(s string, n int) string {
	s = Normalize(s)
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

// Len reports the length of w in runes.
func Len(w string) int { return utf8.RuneCountInString(w) }

// Load reads the word list at path, or the embedded default when path is
// empty, keeping only words of the given length.
func Load(path string, length int) ([]string, Stats, error) {
	if path == "" {
		f, err := assets.Words()
		if err != nil {
			return nil, Stats{}, fmt.Errorf("words: open embedded list: %w", err)
		}
		defer f.Close()
		return Parse(f, length)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("words: %w", err)
	}
	defer f.Close()
	return Parse(f, length)
}

// Parse reads one word per line from r.
func Parse(r io.Reader, length int) ([]string, Stats, error) {
	var out []string
	var st Stats
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w := Normalize(line)
		if Len(w) != length || !isLetters(w) {
			st.WrongShape++
			continue
		}
		if _, dup := seen[w]; dup {
			st.Duplicates++
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, st, fmt.Errorf("words: scan: %w", err)
	}
	st.Kept = len(out)
	return out, st, nil
}

// isLetters reports whether every rune of s is a letter.
func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}
