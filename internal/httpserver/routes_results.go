// apps/go-solver/internal/httpserver/routes_results.go
//
// Read-only views over stored runs.
//   - GET /results/summary, /results/hardest, /results/recent

package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// mountResults registers read-only views over the stored runs.
func (s *Server) mountResults(r chi.Router) {
	r.Route("/results", func(r chi.Router) {
		r.Use(s.requireResults)
		r.Get("/summary", func(w http.ResponseWriter, r *http.Request) {
			sum, err := s.results.Summary(r.Context())
			if err != nil {
				log.Error().Err(err).Msg("results summary")
				writeError(w, http.StatusInternalServerError, "query_failed")
				return
			}
			writeJSON(w, http.StatusOK, sum)
		})
		r.Get("/hardest", func(w http.ResponseWriter, r *http.Request) {
			rows, err := s.results.Hardest(r.Context(), limitParam(r))
			if err != nil {
				log.Error().Err(err).Msg("results hardest")
				writeError(w, http.StatusInternalServerError, "query_failed")
				return
			}
			writeJSON(w, http.StatusOK, rows)
		})
		r.Get("/recent", func(w http.ResponseWriter, r *http.Request) {
			rows, err := s.results.Recent(r.Context(), limitParam(r))
			if err != nil {
				log.Error().Err(err).Msg("results recent")
				writeError(w, http.StatusInternalServerError, "query_failed")
				return
			}
			writeJSON(w, http.StatusOK, rows)
		})
	})
}

func (s *Server) requireResults(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.results == nil {
			writeError(w, http.StatusServiceUnavailable, "persistence_disabled")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// limitParam reads ?limit=, clamped to 1..100 (default 20).
func limitParam(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n <= 0 {
		return 20
	}
	if n > 100 {
		return 100
	}
	return n
}
