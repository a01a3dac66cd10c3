// apps/go-solver/internal/evaluate/evaluate.go
//
// Drives a solver.Engine against known answers.
// Responsibilities:
//   - Play: one round against one answer, scoring each guess with game.Score.
//   - Run: the repeated-evaluation loop over a whole answer list on one engine,
//     aggregating guess counts, failures and a histogram.

package evaluate

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// guessCap bounds rounds played without a guess limit.
const guessCap = 100

var ErrAnswerLength = errors.New("evaluate: answer length differs from candidates")

// Result is the outcome of one round.
type Result struct {
	Game    string   `json:"game"` // game.Game ID, repeated on every log line of the round
	Answer  string   `json:"answer"`
	Guesses int      `json:"guesses"`
	Solved  bool     `json:"solved"`
	Trail   []string `json:"trail"`
}

// Play starts a round on eng and answers each guess with the real score against
// answer until the engine solves it or maxGuesses (0 for no limit) runs out.
// A round the engine cannot finish returns the partial Result and the error.
func Play(eng *solver.Engine, answer string, maxGuesses int) (Result, error) {
	res := Result{Answer: answer}
	if len(answer) != eng.WordLen() {
		return res, fmt.Errorf("%w: %q", ErrAnswerLength, answer)
	}
	if maxGuesses <= 0 {
		maxGuesses = guessCap
	}
	g := game.New(answer, maxGuesses)
	res.Game = g.ID

	guess, _, err := eng.Move(nil)
	if err != nil {
		return res, err
	}
	log.Debug().Str("game", g.ID).Str("answer", answer).Str("opening", guess).Msg("round started")
	for {
		fb, st, err := g.ApplyGuess(guess)
		if err != nil {
			return res, fmt.Errorf("guess %q: %w", guess, err)
		}
		res.Trail = append(res.Trail, guess)
		res.Guesses++

		if st == game.StateLost {
			return res, nil
		}
		next, solved, err := eng.Move(fb)
		if err != nil {
			return res, err
		}
		if solved {
			res.Solved = true
			return res, nil
		}
		guess = next
	}
}

// Options tune Run.
type Options struct {
	MaxGuesses int          // per round; 0 for no limit
	Progress   func(Result) // called after every round, may be nil
}

// Summary aggregates a Run.
type Summary struct {
	Words        int           `json:"words"`
	Solved       int           `json:"solved"`
	TotalGuesses int           `json:"totalGuesses"`
	MaxGuesses   int           `json:"maxGuesses"`
	Hardest      string        `json:"hardest"`
	Failed       []string      `json:"failed"`
	Histogram    map[int]int   `json:"histogram"`
	Elapsed      time.Duration `json:"elapsed"`
}

// Average reports mean guesses per solved word.
func (s Summary) Average() float64 {
	if s.Solved == 0 {
		return 0
	}
	return float64(s.TotalGuesses) / float64(s.Solved)
}

// Buckets returns the histogram keys in ascending order.
func (s Summary) Buckets() []int {
	keys := make([]int, 0, len(s.Histogram))
	for k := range s.Histogram {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Run plays every answer on the same engine in order. Rounds the engine cannot
// finish count as failures; any other engine error aborts the run. Cancelling ctx
// stops between rounds and returns the partial summary with ctx.Err().
func Run(ctx context.Context, eng *solver.Engine, answers []string, opts Options) (Summary, error) {
	sum := Summary{Histogram: map[int]int{}}
	start := time.Now()

	for _, answer := range answers {
		if err := ctx.Err(); err != nil {
			sum.Elapsed = time.Since(start)
			return sum, err
		}
		res, err := Play(eng, answer, opts.MaxGuesses)
		if err != nil && !errors.Is(err, solver.ErrTreeExhausted) {
			sum.Elapsed = time.Since(start)
			return sum, err
		}
		sum.Words++
		if res.Solved {
			sum.Solved++
			sum.TotalGuesses += res.Guesses
			sum.Histogram[res.Guesses]++
			if res.Guesses > sum.MaxGuesses {
				sum.MaxGuesses = res.Guesses
				sum.Hardest = answer
			}
		} else {
			sum.Failed = append(sum.Failed, answer)
			log.Warn().Str("game", res.Game).Str("answer", answer).Strs("trail", res.Trail).Err(err).Msg("round not solved")
		}
		if opts.Progress != nil {
			opts.Progress(res)
		}
	}
	sum.Elapsed = time.Since(start)
	return sum, nil
}
