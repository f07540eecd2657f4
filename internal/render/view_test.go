package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-board/internal/game"
)

func played(t *testing.T, solution string, guesses ...string) *game.Session {
	t.Helper()
	s := game.NewSession()
	require.NoError(t, s.SetSolution(solution))
	for _, g := range guesses {
		for _, r := range g {
			s.Press(string(r))
		}
		s.Press("ENTER")
	}
	return s
}

func TestNewBoardView_Classes(t *testing.T) {
	s := played(t, "ERASE", "SPEED")
	s.Press("C")

	v := NewBoardView(s.Snapshot())
	require.Len(t, v.Rows, game.Rows)
	assert.Equal(t, "playing", v.State)
	assert.Empty(t, v.Solution)
	assert.Equal(t, CursorView{Row: 1, Col: 1}, v.Cursor)

	want := []string{"tile present", "tile absent", "tile present", "tile present", "tile absent"}
	for i, tile := range v.Rows[0] {
		assert.Equal(t, want[i], tile.Class)
		assert.Equal(t, string("SPEED"[i]), tile.Letter)
	}
	assert.Equal(t, TileView{Letter: "C", Class: "tile"}, v.Rows[1][0])
	assert.Equal(t, TileView{Class: "tile"}, v.Rows[1][1])
}

func TestNewBoardView_RevealsSolutionOnlyWhenLost(t *testing.T) {
	won := NewBoardView(played(t, "CRANE", "CRANE").Snapshot())
	assert.Equal(t, "won", won.State)
	assert.Empty(t, won.Solution)

	fails := []string{"FJORD", "FJORD", "FJORD", "FJORD", "FJORD", "FJORD"}
	lost := NewBoardView(played(t, "CRANE", fails...).Snapshot())
	assert.Equal(t, "lost", lost.State)
	assert.Equal(t, "CRANE", lost.Solution)

	loading := NewBoardView(game.NewSession().Snapshot())
	assert.Equal(t, "loading", loading.State)
	assert.Empty(t, loading.Solution)
}

func TestBoardView_JSON(t *testing.T) {
	b, err := json.Marshal(NewBoardView(played(t, "CRANE", "CRANE").Snapshot()))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"class":"tile correct"`)
	assert.Contains(t, string(b), `"state":"won"`)
}

func TestText_ShowsLetters(t *testing.T) {
	out := Text(NewBoardView(played(t, "ERASE", "SPEED").Snapshot()))
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, game.Rows)
	for _, r := range "SPEED" {
		assert.Contains(t, lines[0], string(r))
	}
	assert.Contains(t, lines[1], "·")
}
