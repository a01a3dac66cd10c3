// apps/go-solver/internal/httpserver/routes_solver.go
//
// Solver endpoints.
//   - POST   /solver/new   → create a session over the default or a posted word list
//   - POST   /solver/move  → start a round (empty feedback) or submit feedback
//   - DELETE /solver       → drop the caller's session
//   - POST   /solver/play  → solve one answer server-side and record the run

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/evaluate"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func (s *Server) mountSolver(r chi.Router) {
	r.Route("/solver", func(r chi.Router) {
		r.Post("/new", s.handleNew)
		r.Post("/play", s.handlePlay)
		r.With(s.requireSession).Post("/move", s.handleMove)
		r.With(s.requireSession).Delete("/", s.handleDelete)
	})
}

// engineOptions merges per-request overrides onto the server defaults.
func (s *Server) engineOptions(removeSolved *bool, opening string) solver.Options {
	o := solver.Options{RemoveSolved: s.opts.RemoveSolved, OpeningGuess: s.opts.OpeningGuess}
	if removeSolved != nil {
		o.RemoveSolved = *removeSolved
	}
	if opening != "" {
		o.OpeningGuess = strings.ToLower(opening)
	}
	return o
}

type newReq struct {
	Words        []string `json:"words"`        // optional; defaults to the server list
	RemoveSolved *bool    `json:"removeSolved"` // optional; defaults to server config
	OpeningGuess string   `json:"openingGuess"` // optional
}
type newRes struct {
	SessionID  string `json:"sessionId"`
	Token      string `json:"token"`
	ExpiresAt  int64  `json:"expiresAt"`
	WordLength int    `json:"wordLength"`
	Candidates int    `json:"candidates"`
}

func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	var req newReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	list := s.words
	if len(req.Words) > 0 {
		l, err := words.FromSlice(req.Words, words.Options{})
		if err != nil {
			writeError(w, http.StatusBadRequest, "empty_word_list")
			return
		}
		list = l
	}

	eng := solver.New(s.engineOptions(req.RemoveSolved, req.OpeningGuess))
	if err := eng.Initialize(list.Words()); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sess, err := s.store.Create(r.Context(), eng)
	if err != nil {
		log.Error().Err(err).Msg("create session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := signSession(s.opts.JWTSecret, sess.ID, s.opts.SessionTTL)
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		writeError(w, http.StatusInternalServerError, "token_failed")
		return
	}

	log.Info().Str("session", sess.ID).Int("candidates", list.Len()).Msg("solver session created")
	writeJSON(w, http.StatusOK, newRes{
		SessionID:  sess.ID,
		Token:      tok,
		ExpiresAt:  exp.Unix(),
		WordLength: eng.WordLen(),
		Candidates: eng.Remaining(),
	})
}

type moveReq struct {
	Feedback string `json:"feedback"` // "" starts a round; otherwise "+o-" markers
}
type moveRes struct {
	Guess     string `json:"guess,omitempty"`
	Solved    bool   `json:"solved"`
	Exhausted bool   `json:"exhausted"`
	Guesses   int    `json:"guesses"`
	Remaining int    `json:"remaining"`
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var fb solver.Feedback
	if req.Feedback != "" {
		parsed, err := solver.ParseFeedback(req.Feedback)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_feedback")
			return
		}
		fb = parsed
	}

	sess := sessionFrom(r.Context())
	sess.Mu.Lock()
	defer sess.Mu.Unlock()
	eng := sess.Engine

	if fb == nil && eng.Exhausted() {
		writeError(w, http.StatusConflict, "exhausted")
		return
	}
	guess, solved, err := eng.Move(fb)
	switch {
	case errors.Is(err, solver.ErrFeedbackLength), errors.Is(err, solver.ErrNoRound):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, solver.ErrTreeExhausted):
		writeError(w, http.StatusConflict, "no_candidate")
		return
	case err != nil:
		log.Error().Err(err).Str("session", sess.ID).Msg("solver move")
		writeError(w, http.StatusInternalServerError, "move_failed")
		return
	}

	writeJSON(w, http.StatusOK, moveRes{
		Guess:     guess,
		Solved:    solved,
		Exhausted: eng.Exhausted(),
		Guesses:   eng.Guesses(),
		Remaining: eng.Remaining(),
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if err := s.store.Delete(r.Context(), sess.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type playReq struct {
	Answer string `json:"answer"`
}

// handlePlay solves one answer from the server list on a fresh engine.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req playReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	answer := strings.ToLower(strings.TrimSpace(req.Answer))
	if !s.words.Contains(answer) {
		writeError(w, http.StatusBadRequest, "not_in_list")
		return
	}

	res, err := s.solve(r, answer, "http")
	if err != nil {
		log.Error().Err(err).Str("answer", answer).Msg("solve")
		writeError(w, http.StatusInternalServerError, "solve_failed")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// solve plays answer on a fresh engine over the server list and records the run
// when persistence is enabled. Run.ID stays 0 when nothing was stored.
func (s *Server) solve(r *http.Request, answer, source string) (results.Run, error) {
	eng := solver.New(s.engineOptions(nil, ""))
	if err := eng.Initialize(s.words.Words()); err != nil {
		return results.Run{}, err
	}
	res, err := evaluate.Play(eng, answer, s.opts.MaxGuesses)
	if err != nil && !errors.Is(err, solver.ErrTreeExhausted) {
		return results.Run{}, err
	}

	run := results.Run{Answer: answer, Guesses: res.Guesses, Solved: res.Solved, Trail: res.Trail, Source: source}
	if s.results != nil {
		id, err := s.results.Insert(r.Context(), run)
		if err != nil {
			log.Warn().Err(err).Str("answer", answer).Msg("record run")
		}
		run.ID = id
	}
	return run, nil
}
