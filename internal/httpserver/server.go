// apps/go-board/internal/httpserver/server.go
//
// HTTP server wiring for the browser board.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/" (board page), "/health", "/api/fe/wordle-words".
//   - Game endpoints: POST /game/new, GET /game/{id}, POST /game/{id}/key, POST /game/{id}/retry.
//   - Keystroke stream: GET /ws/{id} (see routes_ws.go).
//
// Notes:
//   - A new game starts without a solution; the word source is asked once in
//     the background. Until it answers the board accepts typing but not Enter.
//   - A failed fetch is logged and leaves the game in "loading"; POST
//     /game/{id}/retry makes exactly one more attempt.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-board/assets"
	"github.com/robalobadob/wordle/apps/go-board/internal/game"
	"github.com/robalobadob/wordle/apps/go-board/internal/render"
	"github.com/robalobadob/wordle/apps/go-board/internal/store"
	"github.com/robalobadob/wordle/apps/go-board/internal/words"
)

// Options configures a Server. List is required; Source defaults to List.
type Options struct {
	Store        store.Store
	List         *words.List
	Source       words.Source
	DailySalt    string
	FetchTimeout time.Duration
	ClientOrigin string
}

// Server bundles router, session store and word source.
type Server struct {
	r            *chi.Mux
	store        store.Store
	list         *words.List
	source       words.Source
	daily        words.DailyPicker
	fetchTimeout time.Duration
	origin       string
	upgrader     websocket.Upgrader
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	s := &Server{
		r:            chi.NewRouter(),
		store:        opts.Store,
		list:         opts.List,
		source:       opts.Source,
		daily:        words.DailyPicker{Salt: opts.DailySalt},
		fetchTimeout: opts.FetchTimeout,
		origin:       opts.ClientOrigin,
	}
	if s.store == nil {
		s.store = store.NewMemoryStore()
	}
	if s.source == nil {
		s.source = s.list
	}
	if s.fetchTimeout <= 0 {
		s.fetchTimeout = 5 * time.Second
	}
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}

	// --- middleware ---
	s.r.Use(chimw.RequestID)               // add X-Request-ID
	s.r.Use(chimw.RealIP)                  // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)               // recover from panics
	s.r.Use(hlog.NewHandler(log.Logger))   // request-scoped logger
	s.r.Use(hlog.AccessHandler(accessLog)) // one line per request
	s.r.Use(s.cors)                        // credentials-friendly CORS

	s.r.Get("/", s.handleIndex)

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
		r.Use(jsonContentType)                 // default JSON responses

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":true}`))
		})
		r.Get("/api/fe/wordle-words", s.handleWords)

		r.Post("/game/new", s.handleNewGame)
		r.Get("/game/{id}", s.handleBoard)
		r.Post("/game/{id}/key", s.handleKey)
		r.Post("/game/{id}/retry", s.handleRetry)
	})

	// Keystroke stream: no timeout, the connection is long-lived.
	s.mountWS(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Handler exposes the router (used by the serve command and tests).
func (s *Server) Handler() http.Handler { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.origin != "" {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", s.origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func accessLog(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("took", d).
		Msg("request")
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError replies {"error": code}.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// ------------------------------ PUBLIC -------------------------------------

// handleIndex serves the embedded board page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := fs.ReadFile(assets.Web(), "index.html")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "missing_page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// handleWords serves the candidate list as a JSON array of strings.
func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(s.list.All())
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Mode     string `json:"mode"`     // "random" (default) | "daily"
	Solution string `json:"solution"` // optional fixed solution (testing)
}

func (q newGameReq) modeOrDefault() string {
	if q.Mode == "" {
		return game.ModeRandom
	}
	return q.Mode
}

type newGameRes struct {
	GameID string `json:"gameId"`
	State  string `json:"state"`
}

// keyReq/Res payloads for POST /game/{id}/key and ws frames.
type keyReq struct {
	Key string `json:"key"`
}
type keyRes struct {
	Outcome *game.Outcome    `json:"outcome,omitempty"`
	Board   render.BoardView `json:"board"`
}

// handleNewGame creates a session and starts the one-shot solution fetch.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	g := game.NewSession()
	switch req.Mode {
	case "", game.ModeRandom:
	case game.ModeDaily:
		g.Mode = game.ModeDaily
	default:
		writeError(w, http.StatusBadRequest, "bad_mode")
		return
	}
	if req.Solution != "" {
		if err := g.SetSolution(req.Solution); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_solution")
			return
		}
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	res := newGameRes{GameID: g.ID, State: g.State()}
	if !g.Ready() {
		go func() { _ = s.loadSolution(res.GameID, req.modeOrDefault()) }()
	}

	hlog.FromRequest(r).Info().Str("gameId", res.GameID).Str("mode", req.modeOrDefault()).Msg("new game")
	writeJSON(w, http.StatusOK, res)
}

// handleBoard returns the read-only board view.
func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, keyRes{Board: render.NewBoardView(snap)})
}

// handleKey applies one key press.
func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	res, err := s.press(r.Context(), chi.URLParam(r, "id"), req.Key)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleRetry makes one more fetch attempt for a game still waiting on its solution.
func (s *Server) handleRetry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	if snap.Ready() {
		writeError(w, http.StatusConflict, "already_ready")
		return
	}
	if err := s.loadSolution(id, snap.Mode); err != nil {
		writeError(w, http.StatusBadGateway, "word_source_failed")
		return
	}
	snap, err = s.store.Get(r.Context(), id)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, keyRes{Board: render.NewBoardView(snap)})
}

// press runs a key through the session's controller under the store lock.
func (s *Server) press(ctx context.Context, id, key string) (keyRes, error) {
	var out game.Outcome
	snap, err := s.store.Update(ctx, id, func(g *game.Session) error {
		out = g.Press(key)
		return nil
	})
	if err != nil {
		return keyRes{}, err
	}
	if out.Event == game.EventWon || out.Event == game.EventLost {
		log.Info().Str("gameId", id).Str("result", string(out.Event)).Int("row", out.Row).Msg("game finished")
	}
	return keyRes{Outcome: &out, Board: render.NewBoardView(snap)}, nil
}

// loadSolution asks the word source once and stores the pick.
// Failures are logged and leave the session unready.
func (s *Server) loadSolution(id, mode string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
	defer cancel()

	logger := log.With().Str("gameId", id).Logger()
	word, err := words.FetchSolution(ctx, s.source, s.picker(mode))
	if err != nil {
		logger.Error().Err(err).Msg("fetch solution")
		return err
	}
	_, err = s.store.Update(ctx, id, func(g *game.Session) error {
		return g.SetSolution(word)
	})
	switch {
	case errors.Is(err, game.ErrAlreadySet):
		logger.Debug().Msg("solution already set")
		return nil
	case err != nil:
		logger.Warn().Err(err).Msg("store solution")
		return err
	}
	logger.Debug().Msg("solution ready")
	return nil
}

func (s *Server) picker(mode string) words.Picker {
	if mode == game.ModeDaily {
		return s.daily
	}
	return words.RandomPicker{}
}

// storeError maps store errors to responses.
func (s *Server) storeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	hlog.FromRequest(r).Error().Err(err).Msg("store")
	writeError(w, http.StatusInternalServerError, "store_failed")
}

// checkOrigin accepts same-host pages and the configured client origin.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || origin == s.origin {
		return true
	}
	return origin == "http://"+r.Host || origin == "https://"+r.Host
}
