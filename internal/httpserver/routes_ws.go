// apps/go-board/internal/httpserver/routes_ws.go
//
// WebSocket route for live play.
//   - GET /ws/{id} → upgrade, send the current board, then apply key frames.
//
// Client frames: {"key":"A"} / {"key":"ENTER"} / {"key":"BACKSPACE"}.
// Server frames: {"outcome":{...},"board":{...}} after every key,
// or {"error":"not_found"} if the session went away.
// Frames from one connection are applied strictly in order.

package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle/apps/go-board/internal/render"
	"github.com/robalobadob/wordle/apps/go-board/internal/store"
)

// maxFrame bounds a single client frame; key frames are tiny.
const maxFrame = 512

// mountWS registers the websocket route.
func (s *Server) mountWS(r chi.Router) {
	r.Get("/ws/{id}", s.handleWS)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error.
		hlog.FromRequest(r).Warn().Err(err).Msg("ws upgrade")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxFrame)

	logger := hlog.FromRequest(r).With().Str("gameId", id).Logger()
	logger.Debug().Msg("ws connected")

	if err := conn.WriteJSON(keyRes{Board: render.NewBoardView(snap)}); err != nil {
		return
	}

	for {
		var msg keyReq
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Msg("ws read")
			}
			return
		}

		res, err := s.press(r.Context(), id, msg.Key)
		if errors.Is(err, store.ErrNotFound) {
			_ = conn.WriteJSON(map[string]string{"error": "not_found"})
			return
		}
		if err != nil {
			logger.Error().Err(err).Msg("ws press")
			return
		}
		if err := conn.WriteJSON(res); err != nil {
			logger.Debug().Err(err).Msg("ws write")
			return
		}
	}
}
