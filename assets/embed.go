// apps/go-board/assets/embed.go
//
// Embedded defaults: the candidate answer list and the browser board page.

package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed answers.txt web
var FS embed.FS

// readLines returns the non-empty, non-comment lines of an embedded file, lowercased.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// AnswersList returns the embedded candidate solutions.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}

// Web returns the static browser files rooted at web/.
func Web() fs.FS {
	sub, err := fs.Sub(FS, "web")
	if err != nil {
		panic(err) // embedded directory is always present
	}
	return sub
}
