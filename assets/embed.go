// Package assets carries the default dictionary compiled into the binaries.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt
var FS embed.FS

// Words opens the embedded default word list (five-letter words, one per line).
func Words() (fs.File, error) {
	return FS.Open("words.txt")
}
