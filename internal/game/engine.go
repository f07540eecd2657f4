// apps/go-board/internal/game/engine.go
//
// Input controller for a single board session.
// Responsibilities:
//   - Create sessions with an empty 6x5 grid (solution may arrive later).
//   - Interpret key presses: letters, delete/backspace, enter.
//   - Submit full rows through Evaluate and write the statuses once.
//   - Track state transitions: loading → playing → won/lost.
//
// Notes:
//   - Rejections the player should see (incomplete row, word list still
//     loading) are reported as Outcomes, not errors; they never change state.
//   - Once the cursor reaches row 6 every input is a no-op.

package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrAlreadySet is returned when a session's solution is assigned twice.
	ErrAlreadySet = errors.New("solution already set")
	// ErrInvalidWord is returned for solutions that are not 5 letters A–Z.
	ErrInvalidWord = errors.New("solution must be 5 letters A-Z")
)

// Solution pick modes.
const (
	ModeRandom = "random"
	ModeDaily  = "daily"
)

// User-facing notices.
const (
	MsgIncomplete = "Guess must be 5 letters long!"
	MsgNotReady   = "Word list is still loading"
	MsgWon        = "You won!"
	msgLostFmt    = "Game over! The solution was: %s"
)

// Event names what a single key press did.
type Event string

const (
	EventIgnored    Event = "ignored"
	EventLetter     Event = "letter"
	EventDelete     Event = "delete"
	EventIncomplete Event = "incomplete"
	EventNotReady   Event = "not_ready"
	EventAdvance    Event = "advance"
	EventWon        Event = "won"
	EventLost       Event = "lost"
)

// Outcome reports the result of one transition.
// Statuses is only set when a row was submitted.
type Outcome struct {
	Event    Event    `json:"event"`
	Row      int      `json:"row"`
	Statuses []Status `json:"statuses,omitempty"`
	Message  string   `json:"message,omitempty"`
}

// NewSession constructs an empty session. The solution is set later with
// SetSolution once the word source has answered.
func NewSession() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		Mode:      ModeRandom,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetSolution assigns the solution exactly once. The word is upper-cased.
func (s *Session) SetSolution(word string) error {
	if s.Solution != "" {
		return ErrAlreadySet
	}
	w := strings.ToUpper(strings.TrimSpace(word))
	if !isWord(w) {
		return fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}
	s.Solution = w
	s.touch()
	return nil
}

// Ready reports whether a solution is available to match against.
func (s *Session) Ready() bool { return s.Solution != "" }

// Finished reports whether the session accepts no more input.
func (s *Session) Finished() bool { return s.Cursor.Row >= Rows }

// State reports a coarse string representation of the session.
func (s *Session) State() string {
	switch {
	case s.Finished() && s.Won:
		return "won"
	case s.Finished():
		return "lost"
	case !s.Ready():
		return "loading"
	}
	return "playing"
}

// RowWord returns the letters typed into row i so far.
func (s *Session) RowWord(i int) string {
	var b strings.Builder
	for _, c := range s.Grid[i] {
		if c.Letter != 0 {
			b.WriteRune(c.Letter)
		}
	}
	return b.String()
}

// Snapshot returns a copy that shares no state with s.
func (s *Session) Snapshot() Session { return *s }

// Press interprets one key the way a keyboard event would be read:
// a single letter types, BACKSPACE/DELETE erase, ENTER submits.
// Anything else is ignored.
func (s *Session) Press(key string) Outcome {
	k := strings.ToUpper(key)
	switch {
	case len(k) == 1 && k[0] >= 'A' && k[0] <= 'Z':
		return s.TypeLetter(rune(k[0]))
	case k == "BACKSPACE" || k == "DELETE":
		return s.Delete()
	case k == "ENTER":
		return s.Submit()
	}
	return Outcome{Event: EventIgnored, Row: s.Cursor.Row}
}

// TypeLetter writes r into the active cell and advances the column.
func (s *Session) TypeLetter(r rune) Outcome {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if s.Finished() || s.Cursor.Col >= Cols || r < 'A' || r > 'Z' {
		return Outcome{Event: EventIgnored, Row: s.Cursor.Row}
	}
	s.Grid[s.Cursor.Row][s.Cursor.Col].Letter = r
	s.Cursor.Col++
	s.touch()
	return Outcome{Event: EventLetter, Row: s.Cursor.Row}
}

// Delete clears the cell left of the cursor.
func (s *Session) Delete() Outcome {
	if s.Finished() || s.Cursor.Col == 0 {
		return Outcome{Event: EventIgnored, Row: s.Cursor.Row}
	}
	s.Cursor.Col--
	s.Grid[s.Cursor.Row][s.Cursor.Col].Letter = 0
	s.touch()
	return Outcome{Event: EventDelete, Row: s.Cursor.Row}
}

// Submit scores the active row.
//
// State transitions:
//   - All cells correct → finished, won.
//   - Last row (index Rows-1) not correct → finished, lost; the solution is revealed.
//   - Otherwise → next row, column 0.
func (s *Session) Submit() Outcome {
	row := s.Cursor.Row
	if s.Finished() {
		return Outcome{Event: EventIgnored, Row: row}
	}
	if s.Cursor.Col != Cols {
		return Outcome{Event: EventIncomplete, Row: row, Message: MsgIncomplete}
	}
	if !s.Ready() {
		return Outcome{Event: EventNotReady, Row: row, Message: MsgNotReady}
	}

	statuses := Evaluate(s.RowWord(row), s.Solution)
	for i, st := range statuses {
		s.Grid[row][i].Status = st
	}
	s.touch()

	switch {
	case allCorrect(statuses):
		s.Won = true
		s.Cursor.Row = Rows
		return Outcome{Event: EventWon, Row: row, Statuses: statuses, Message: MsgWon}
	case row == Rows-1:
		s.Cursor.Row = Rows
		return Outcome{Event: EventLost, Row: row, Statuses: statuses, Message: fmt.Sprintf(msgLostFmt, s.Solution)}
	}
	s.Cursor.Row++
	s.Cursor.Col = 0
	return Outcome{Event: EventAdvance, Row: row, Statuses: statuses}
}

func (s *Session) touch() { s.UpdatedAt = time.Now().UTC() }

// isWord checks that w is exactly Cols uppercase A–Z letters.
func isWord(w string) bool {
	if len(w) != Cols {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
