// apps/go-board/internal/render/view.go
//
// Read-only projection of a session for display.
// The view never holds a reference into the live session: callers pass a
// snapshot and get plain data back (JSON-friendly for the browser board).

package render

import (
	"github.com/robalobadob/wordle/apps/go-board/internal/game"
)

// TileView is one rendered cell.
type TileView struct {
	Letter string      `json:"letter"`
	Status game.Status `json:"status"`
	Class  string      `json:"class"` // "tile" + status class
}

// CursorView mirrors game.Cursor.
type CursorView struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// BoardView is the full board plus session state.
type BoardView struct {
	ID       string       `json:"id"`
	Rows     [][]TileView `json:"rows"`
	Cursor   CursorView   `json:"cursor"`
	State    string       `json:"state"` // loading | playing | won | lost
	Solution string       `json:"solution,omitempty"`
}

// NewBoardView projects a snapshot. The solution is only revealed once lost.
func NewBoardView(s game.Session) BoardView {
	rows := make([][]TileView, game.Rows)
	for y := range s.Grid {
		rows[y] = make([]TileView, game.Cols)
		for x, c := range s.Grid[y] {
			rows[y][x] = tileView(c)
		}
	}
	v := BoardView{
		ID:     s.ID,
		Rows:   rows,
		Cursor: CursorView{Row: s.Cursor.Row, Col: s.Cursor.Col},
		State:  s.State(),
	}
	if v.State == "lost" {
		v.Solution = s.Solution
	}
	return v
}

func tileView(c game.Cell) TileView {
	t := TileView{Status: c.Status, Class: "tile"}
	if c.Letter != 0 {
		t.Letter = string(c.Letter)
	}
	if c.Status != game.StatusUnset {
		t.Class += " " + string(c.Status)
	}
	return t
}
