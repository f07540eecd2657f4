// apps/go-board/internal/words/words.go
//
// Provides candidate word list management.
//
// Responsibilities:
//   - Load the candidate list from an environment-provided file or fall back to the embedded default.
//   - Normalize entries (trimmed, lowercase, exactly 5 letters a–z).
//   - Serve the list as a Source so in-process sessions can skip the HTTP hop.
//
// Word list file format:
//   one word per line; blank lines and lines starting with '#' are skipped.
//
// Environment variables:
//   WORDS_ANSWERS_FILE=/path/to/answers.txt

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-board/assets"
)

// WordLen is the length of every candidate word.
const WordLen = 5

// ErrEmpty is returned when a list or a fetched payload has no usable words.
var ErrEmpty = errors.New("words: list is empty")

// List is an immutable, normalized set of candidate words.
type List struct {
	words []string
	set   map[string]struct{}
}

// LoadList reads the list from path, or the embedded default when path is empty.
// Returns ErrEmpty if nothing usable is left after normalization.
func LoadList(path string) (*List, error) {
	var raw []string
	var err error
	if path != "" {
		raw, err = readWordFile(path)
	} else {
		raw, err = assets.AnswersList()
	}
	if err != nil {
		return nil, fmt.Errorf("load word list: %w", err)
	}
	l := NewList(raw)
	if l.Len() == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}

// NewList normalizes words, dropping invalid entries and duplicates.
func NewList(words []string) *List {
	l := &List{set: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = normalize(w)
		if w == "" {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	return l
}

// Words implements Source by returning a copy of the list.
func (l *List) Words(ctx context.Context) ([]string, error) {
	if len(l.words) == 0 {
		return nil, ErrEmpty
	}
	return l.All(), nil
}

// All returns a copy of the words in load order.
func (l *List) All() []string {
	return append([]string(nil), l.words...)
}

// Contains reports whether w (any case) is in the list.
func (l *List) Contains(w string) bool {
	_, ok := l.set[strings.ToLower(w)]
	return ok
}

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

// normalize lowercases and trims w; returns "" unless it is a 5-letter word.
func normalize(w string) string {
	w = strings.TrimSpace(strings.ToLower(w))
	if len(w) != WordLen || !isAlpha(w) {
		return ""
	}
	return w
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
