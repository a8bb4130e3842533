// Package daily picks the same puzzle for everyone on a given UTC date.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"math/big"
	"time"

	"github.com/robalobadob/wordle/apps/go-puzzle/internal/game"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex maps date to [0, n) by reducing the full
// HMAC-SHA256(salt, DateKey(date)) digest mod n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	d := new(big.Int).SetBytes(mac.Sum(nil))
	return int(d.Mod(d, big.NewInt(int64(n))).Int64())
}

// Puzzle returns the puzzle for date drawn from g.
func Puzzle(g *game.Generator, date time.Time, salt string) *game.Puzzle {
	return g.At(WordIndex(date, salt, g.Size()))
}
