// apps/go-board/internal/game/types.go
//
// Core type definitions for the board game engine.
// Defines:
//   - Status: per-cell result of a submitted guess (correct/present/absent).
//   - Cell, Row, Grid: the fixed 6x5 board.
//   - Cursor: where the next typed letter lands.
//   - Session: one game (grid + cursor + solution).

package game

import "time"

const (
	// Rows is the number of guesses a player gets.
	Rows = 6
	// Cols is the length of the solution word.
	Cols = 5
)

// Status represents the evaluation result for a single cell.
// Possible values:
//   - "":        not yet submitted.
//   - "correct": letter is in the solution at this position.
//   - "present": letter is in the solution at another position.
//   - "absent":  letter has no remaining occurrence in the solution.
type Status string

const (
	StatusUnset   Status = ""
	StatusCorrect Status = "correct"
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// Cell is one tile on the board. Letter is 0 when empty.
type Cell struct {
	Letter rune
	Status Status
}

// Row is one guess line.
type Row [Cols]Cell

// Grid is the whole board, top row first.
type Grid [Rows]Row

// Cursor is the position of the next typed letter.
// Row == Rows means the session is finished.
type Cursor struct {
	Row int
	Col int
}

// Session holds the state of a single game.
// Arrays keep it a plain value: copying a Session copies the whole board.
type Session struct {
	ID        string    // Unique session identifier.
	Mode      string    // How the solution is picked: "random" or "daily".
	Solution  string    // Uppercase solution; empty until the word list arrives.
	Grid      Grid      // Letters and statuses.
	Cursor    Cursor    // Active row/column.
	Won       bool      // True once a row came back all correct.
	CreatedAt time.Time // Session start.
	UpdatedAt time.Time // Last accepted transition (used for idle pruning).
}
