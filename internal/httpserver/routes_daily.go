// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily puzzle.
//   - POST /daily/new → start a session on today's puzzle
//   - GET  /daily     → today's date key and puzzle shape (no solution)
//
// Everyone gets the same solution on a given UTC date (HMAC of date + salt).
// Once a daily session ends, submitting again resets it onto a random
// puzzle like any other session.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/go-puzzle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-puzzle/internal/game"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDailyInfo)
		r.Post("/new", s.handleDailyNew)
	})
}

// dailyInfoRes is returned by GET /daily.
type dailyInfoRes struct {
	Date        string `json:"date"`
	WordLength  int    `json:"wordLength"`
	MaxAttempts int    `json:"maxAttempts"`
}

func (s *Server) handleDailyInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dailyInfoRes{
		Date:        daily.DateKey(s.now()),
		WordLength:  s.gen.WordLength(),
		MaxAttempts: s.gen.MaxAttempts(),
	})
}

// handleDailyNew starts a session on today's puzzle.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	p := daily.Puzzle(s.gen, s.now(), s.opts.DailySalt)
	s.startSession(w, r, game.NewSessionWith(s.gen, p), "daily:"+daily.DateKey(s.now()))
}
