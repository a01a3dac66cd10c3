// apps/go-solver/internal/httpserver/routes_daily.go
//
// Daily target endpoint.
//   - GET /daily → the solver's trail for today's word (or ?date=YYYY-MM-DD)
//
// The word is chosen deterministically from date + salt. The first request of a
// day solves it and, with persistence enabled, records the run; later requests
// for that day read it back.

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
)

type dailyRes struct {
	Date      string      `json:"date"`
	WordIndex int         `json:"wordIndex"`
	Run       results.Run `json:"run"`
	Cached    bool        `json:"cached"`
}

func (s *Server) mountDaily(r chi.Router) {
	r.Get("/daily", s.handleDaily)
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	day := time.Now().UTC()
	if q := r.URL.Query().Get("date"); q != "" {
		t, err := time.Parse("2006-01-02", q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_date")
			return
		}
		day = t
	}
	date := daily.DateKey(day)
	idx := daily.WordIndex(day, s.opts.DailySalt, s.words.Len())

	if s.results != nil {
		run, ok, err := s.results.Daily(r.Context(), date)
		if err != nil {
			log.Warn().Err(err).Str("date", date).Msg("load daily run")
		} else if ok {
			writeJSON(w, http.StatusOK, dailyRes{Date: date, WordIndex: idx, Run: run, Cached: true})
			return
		}
	}

	run, err := s.solve(r, daily.Target(day, s.opts.DailySalt, s.words), "daily")
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("solve daily")
		writeError(w, http.StatusInternalServerError, "solve_failed")
		return
	}
	if s.results != nil && run.ID != 0 {
		if err := s.results.RecordDaily(r.Context(), date, idx, run.ID); err != nil {
			log.Warn().Err(err).Str("date", date).Msg("record daily run")
		}
	}
	writeJSON(w, http.StatusOK, dailyRes{Date: date, WordIndex: idx, Run: run})
}
