// apps/go-solver/internal/results/store.go
//
// SQLite-backed log of solver runs.
// Responsibilities:
//   - Insert one row per solved (or abandoned) target word.
//   - Link a run to a calendar day for the daily target.
//   - Aggregate queries: overall summary, hardest answers, recent runs.
//
// The schema lives in assets/sql and is applied by the caller before use.

package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Run is one solver attempt at one answer.
type Run struct {
	ID        int64    `json:"id"`
	Answer    string   `json:"answer"`
	Guesses   int      `json:"guesses"`
	Solved    bool     `json:"solved"`
	Trail     []string `json:"trail"`
	Source    string   `json:"source"`
	CreatedAt string   `json:"createdAt,omitempty"`
}

// Summary aggregates every stored run.
type Summary struct {
	Runs       int     `json:"runs"`
	Solved     int     `json:"solved"`
	AvgGuesses float64 `json:"avgGuesses"`
	MaxGuesses int     `json:"maxGuesses"`
}

// Hardness is the per-answer aggregate returned by Hardest.
type Hardness struct {
	Answer     string  `json:"answer"`
	Runs       int     `json:"runs"`
	AvgGuesses float64 `json:"avgGuesses"`
	MaxGuesses int     `json:"maxGuesses"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert stores r and returns its row id. An empty Source is recorded as "cli".
func (s *Store) Insert(ctx context.Context, r Run) (int64, error) {
	if r.Source == "" {
		r.Source = "cli"
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO solve_runs(answer, guesses, solved, trail, source) VALUES(?,?,?,?,?)`,
		r.Answer, r.Guesses, r.Solved, strings.Join(r.Trail, ","), r.Source,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	return res.LastInsertId()
}

// RecordDaily links runID to date, replacing any earlier run for that day.
func (s *Store) RecordDaily(ctx context.Context, date string, wordIndex int, runID int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO daily_runs(date, word_index, run_id) VALUES(?,?,?)`,
		date, wordIndex, runID,
	)
	return err
}

// Daily returns the run recorded for date, if any.
func (s *Store) Daily(ctx context.Context, date string) (Run, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT r.id, r.answer, r.guesses, r.solved, r.trail, r.source, r.created_at
		FROM daily_runs d JOIN solve_runs r ON r.id = d.run_id
		WHERE d.date=?`, date,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, err
	}
	return r, true, nil
}

func (s *Store) Summary(ctx context.Context) (Summary, error) {
	var sum Summary
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1), COALESCE(SUM(solved),0), COALESCE(AVG(guesses),0), COALESCE(MAX(guesses),0)
		FROM solve_runs`,
	).Scan(&sum.Runs, &sum.Solved, &sum.AvgGuesses, &sum.MaxGuesses)
	return sum, err
}

// Hardest lists answers by descending average guess count.
func (s *Store) Hardest(ctx context.Context, limit int) ([]Hardness, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT answer, COUNT(1), AVG(guesses), MAX(guesses)
		FROM solve_runs
		WHERE solved=1
		GROUP BY answer
		ORDER BY AVG(guesses) DESC, MAX(guesses) DESC, answer ASC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Hardness, 0, limit)
	for rows.Next() {
		var h Hardness
		if err := rows.Scan(&h.Answer, &h.Runs, &h.AvgGuesses, &h.MaxGuesses); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Recent returns the newest runs first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, answer, guesses, solved, trail, source, created_at
		FROM solve_runs
		ORDER BY id DESC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r     Run
		trail string
	)
	if err := sc.Scan(&r.ID, &r.Answer, &r.Guesses, &r.Solved, &trail, &r.Source, &r.CreatedAt); err != nil {
		return Run{}, err
	}
	if trail != "" {
		r.Trail = strings.Split(trail, ",")
	}
	return r, nil
}
