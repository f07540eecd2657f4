package httpserver

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-board/internal/game"
)

func dialWS(t *testing.T, url string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(url, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if conn != nil {
		t.Cleanup(func() { conn.Close() })
	}
	return conn, resp, err
}

func readFrame(t *testing.T, conn *websocket.Conn) keyRes {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var res keyRes
	require.NoError(t, conn.ReadJSON(&res))
	return res
}

func TestWS_PlayToWin(t *testing.T) {
	ts := newTestServer(t, nil)
	g := newGame(t, ts, newGameReq{Solution: "robot"})

	conn, _, err := dialWS(t, ts.URL+"/ws/"+g.GameID)
	require.NoError(t, err)

	first := readFrame(t, conn)
	assert.Nil(t, first.Outcome)
	assert.Equal(t, "playing", first.Board.State)

	send := func(key string) keyRes {
		require.NoError(t, conn.WriteJSON(keyReq{Key: key}))
		return readFrame(t, conn)
	}

	for _, k := range letters("FLOOR") {
		assert.Equal(t, game.EventLetter, send(k).Outcome.Event)
	}
	res := send("Enter")
	require.Equal(t, game.EventAdvance, res.Outcome.Event)
	assert.Equal(t, []game.Status{game.StatusAbsent, game.StatusAbsent, game.StatusPresent, game.StatusCorrect, game.StatusPresent}, res.Outcome.Statuses)

	send("X")
	res = send("Backspace")
	assert.Equal(t, game.EventDelete, res.Outcome.Event)

	for _, k := range letters("ROBOT") {
		send(k)
	}
	res = send("ENTER")
	assert.Equal(t, game.EventWon, res.Outcome.Event)
	assert.Equal(t, game.MsgWon, res.Outcome.Message)
	assert.Equal(t, "won", res.Board.State)

	assert.Equal(t, game.EventIgnored, send("A").Outcome.Event)
}

func TestWS_UnknownGame(t *testing.T) {
	ts := newTestServer(t, nil)
	_, resp, err := dialWS(t, ts.URL+"/ws/missing")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWS_RejectsForeignOrigin(t *testing.T) {
	ts := newTestServer(t, nil)
	g := newGame(t, ts, newGameReq{Solution: "crane"})

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/" + g.GameID
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, http.Header{"Origin": []string{"http://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
