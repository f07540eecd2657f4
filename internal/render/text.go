// apps/go-board/internal/render/text.go
//
// Terminal rendering of a BoardView with lipgloss tile styles.

package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-board/internal/game"
)

var (
	tileBase = lipgloss.NewStyle().
			Bold(true).
			Width(3).
			Align(lipgloss.Center).
			MarginRight(1)

	tileStyles = map[game.Status]lipgloss.Style{
		game.StatusUnset:   tileBase.Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		game.StatusCorrect: tileBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("#6aaa64")),
		game.StatusPresent: tileBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("#c9b458")),
		game.StatusAbsent:  tileBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("#787c7e")),
	}

	activeTile = tileBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("240"))
)

// Text renders the board as terminal lines, one per row.
// Empty cells show a dot; the active row is highlighted while playing.
func Text(v BoardView) string {
	lines := make([]string, 0, len(v.Rows))
	for y, row := range v.Rows {
		tiles := make([]string, 0, len(row))
		for _, t := range row {
			letter := t.Letter
			if letter == "" {
				letter = "·"
			}
			style := tileStyles[t.Status]
			if t.Status == game.StatusUnset && y == v.Cursor.Row {
				style = activeTile
			}
			tiles = append(tiles, style.Render(letter))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return strings.Join(lines, "\n")
}
