// internal/httpserver/server.go
//
// HTTP front end for the puzzle.
//
// The server is a thin presentation collaborator: it forwards player input
// to a game.Session and returns the session's snapshot. It never scores
// guesses itself.
//
// Responsibilities:
//   - Router + middleware (request IDs, access log, panic recovery,
//     timeouts, JSON, CORS).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: /game/new, /game, /game/input, /game/submit, /game/reset,
//     DELETE /game.
//   - Daily puzzle: mounted under /daily.
//
// Each live session sits in the store behind its own mutex, so requests for
// one session are processed one at a time.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle/apps/go-puzzle/internal/game"
	"github.com/robalobadob/wordle/apps/go-puzzle/internal/store"
)

// Options configures a Server.
type Options struct {
	Secret        string        // HMAC key for session tokens
	SessionTTL    time.Duration // token lifetime
	CookieName    string
	SecureCookies bool
	ClientOrigin  string // single CORS origin allowed with credentials
	DailySalt     string
}

// Server bundles router, session store, and puzzle generator.
type Server struct {
	r     *chi.Mux
	store store.Store
	gen   *game.Generator
	opts  Options
	log   zerolog.Logger
	now   func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, gen *game.Generator, opts Options, logger zerolog.Logger) *Server {
	if opts.CookieName == "" {
		opts.CookieName = "wordle_session"
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 24 * time.Hour
	}
	s := &Server{r: chi.NewRouter(), store: st, gen: gen, opts: opts, log: logger, now: time.Now}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(s.log))          // request-scoped logger
	s.r.Use(requestIDField)                  // tag log lines with the request ID
	s.r.Use(accessLog)                       // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordle-puzzle",
			"endpoints": []string{"/health", "POST /game/new", "GET /game", "POST /game/input", "POST /game/submit", "POST /game/reset", "DELETE /game", "POST /daily/new"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{
			"words":       s.gen.Size(),
			"wordLength":  s.gen.WordLength(),
			"maxAttempts": s.gen.MaxAttempts(),
		})
	})

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Group(func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/game", s.handleView)
		r.Post("/game/input", s.handleInput)
		r.Post("/game/submit", s.handleSubmit)
		r.Post("/game/reset", s.handleReset)
		r.Delete("/game", s.handleEnd)
	})

	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Handler exposes the router (used by tests and http.Server).
func (s *Server) Handler() http.Handler { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestIDField copies chi's request ID into the request logger.
func requestIDField(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("requestId", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one debug line per request.
var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("took", d).
		Msg("request")
})

// cors enables credentialed CORS for a single origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.opts.ClientOrigin != "" {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", s.opts.ClientOrigin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func loggerFrom(r *http.Request) *zerolog.Logger { return hlog.FromRequest(r) }

// ------------------------------ GAME ---------------------------------------

// newGameRes is returned by /game/new and /daily/new.
type newGameRes struct {
	Token string    `json:"token"`
	Game  game.View `json:"game"`
}

// handleNewGame creates a session on a random puzzle.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	s.startSession(w, r, game.NewSession(s.gen), "random")
}

// startSession stores sess, hands the caller a token for it, and returns
// the initial view.
func (s *Server) startSession(w http.ResponseWriter, r *http.Request, sess *game.Session, kind string) {
	id, err := s.store.Create(r.Context(), sess)
	if err != nil {
		loggerFrom(r).Error().Err(err).Msg("create session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signToken(id)
	if err != nil {
		loggerFrom(r).Error().Err(err).Msg("sign session token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)
	loggerFrom(r).Info().Str("sessionId", id).Str("kind", kind).Msg("session started")
	writeJSON(w, http.StatusOK, newGameRes{Token: tok, Game: sess.Snapshot()})
}

// handleView returns the caller's current snapshot.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *game.Session) (any, error) {
		return sess.Snapshot(), nil
	})
}

// inputReq is the payload for /game/input.
type inputReq struct {
	Text string `json:"text"`
}

// handleInput applies the input-box normalization (uppercase, truncate).
func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	var req inputReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.withSession(w, r, func(sess *game.Session) (any, error) {
		sess.InputChanged(req.Text)
		return sess.Snapshot(), nil
	})
}

// submitReq is the payload for /game/submit. Without Guess the stored
// input buffer is submitted.
type submitReq struct {
	Guess *string `json:"guess"`
}

// submitRes reports what the submit did plus the new snapshot.
type submitRes struct {
	Action string    `json:"action"` // rejected | accepted | reset
	Game   game.View `json:"game"`
}

// handleSubmit forwards one submit event to the session.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.withSession(w, r, func(sess *game.Session) (any, error) {
		if req.Guess != nil {
			sess.InputChanged(*req.Guess)
		}
		out := sess.SubmitInput()
		ev := loggerFrom(r).Info().
			Str("action", out.Action.String()).
			Str("status", out.Status.String()).
			Int("attempts", len(sess.Attempts()))
		if out.Attempt != nil {
			ev = ev.Str("guess", out.Attempt.Word)
		}
		ev.Msg("submit")
		return submitRes{Action: out.Action.String(), Game: sess.Snapshot()}, nil
	})
}

// handleReset is the explicit "new game" action.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *game.Session) (any, error) {
		sess.Reset()
		return sess.Snapshot(), nil
	})
}

// handleEnd forgets the caller's session and clears the cookie.
func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "no_session")
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		loggerFrom(r).Error().Err(err).Msg("delete session")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	s.clearSessionCookie(w)
	loggerFrom(r).Info().Str("sessionId", id).Msg("session ended")
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// withSession runs fn under the session lock and writes its result.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(*game.Session) (any, error)) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "no_session")
		return
	}
	loggerFrom(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("sessionId", id)
	})

	var res any
	err = s.store.With(r.Context(), id, func(sess *game.Session) error {
		var ferr error
		res, ferr = fn(sess)
		return ferr
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "session_not_found")
	case err != nil:
		loggerFrom(r).Error().Err(err).Msg("session event")
		writeError(w, http.StatusInternalServerError, "server_error")
	default:
		writeJSON(w, http.StatusOK, res)
	}
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
