// apps/go-board/internal/tui/model.go
//
// Terminal play as a bubbletea program.
// Key messages arrive one at a time on the program loop and are fed to the
// session controller; the solution fetch runs as a command and comes back as
// a message, so the session is only ever touched from Update.

package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-board/internal/game"
	"github.com/robalobadob/wordle/apps/go-board/internal/render"
)

// FetchFunc produces the solution word (one attempt per call).
type FetchFunc func(ctx context.Context) (string, error)

const (
	msgFetchFailed = "Could not load the word list (ctrl+r to retry)"
	helpLine       = "type letters · enter to submit · backspace to erase · esc to quit"
)

var (
	noticeStyle = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

type solutionMsg struct {
	word string
	err  error
}

// Model is the bubbletea model for one terminal game.
type Model struct {
	sess     *game.Session
	fetch    FetchFunc
	fetching bool
	notice   string
}

// New builds a model whose solution comes from fetch.
func New(fetch FetchFunc) Model {
	return Model{sess: game.NewSession(), fetch: fetch, fetching: true}
}

// Session returns a detached copy of the session.
func (m Model) Session() *game.Session {
	snap := m.sess.Snapshot()
	return &snap
}

// Notice is the last user-facing message.
func (m Model) Notice() string { return m.notice }

// Init starts the solution fetch.
func (m Model) Init() tea.Cmd { return m.fetchCmd() }

func (m Model) fetchCmd() tea.Cmd {
	fetch := m.fetch
	return func() tea.Msg {
		w, err := fetch(context.Background())
		return solutionMsg{word: w, err: err}
	}
}

// Update handles fetch results and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case solutionMsg:
		m.fetching = false
		if msg.err == nil {
			msg.err = m.sess.SetSolution(msg.word)
		}
		if msg.err != nil {
			log.Error().Err(msg.err).Str("gameId", m.sess.ID).Msg("fetch solution")
			m.notice = msgFetchFailed
			return m, nil
		}
		if m.notice == game.MsgNotReady || m.notice == msgFetchFailed {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlR:
			if m.sess.Ready() || m.fetching {
				return m, nil
			}
			m.fetching = true
			m.notice = ""
			return m, m.fetchCmd()
		case tea.KeyEnter:
			m.apply("ENTER")
		case tea.KeyBackspace, tea.KeyDelete:
			m.apply("BACKSPACE")
		case tea.KeyRunes:
			if len(msg.Runes) == 1 {
				m.apply(string(msg.Runes[0]))
			}
		}
	}
	return m, nil
}

// apply runs one key through the controller and updates the notice.
func (m *Model) apply(key string) {
	out := m.sess.Press(key)
	switch {
	case out.Message != "":
		m.notice = out.Message
	case out.Event != game.EventIgnored && !m.sess.Finished():
		m.notice = ""
	}
	if out.Event == game.EventWon || out.Event == game.EventLost {
		log.Info().Str("gameId", m.sess.ID).Str("result", string(out.Event)).Int("row", out.Row).Msg("game finished")
	}
}

// View renders the board, the last notice and a help line.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(render.Text(render.NewBoardView(m.sess.Snapshot())))
	b.WriteString("\n\n")
	switch {
	case m.notice != "":
		b.WriteString(noticeStyle.Render(m.notice))
	case m.fetching:
		b.WriteString(helpStyle.Render("loading word list…"))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine))
	b.WriteString("\n")
	return b.String()
}
