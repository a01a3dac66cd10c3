// apps/go-solver/internal/solver/engine.go
//
// Round controller for the guess engine.
// Responsibilities:
//   - Build the original tree and letter-frequency tables from the candidate set.
//   - Start rounds: snapshot the original tree into a working tree, reset the
//     per-round letter state, emit the opening guess.
//   - Translate feedback into working-tree edits and derive the next guess.
//   - In repeated-evaluation mode, drop each solved word from the original tree and
//     the frequency tables so it is never proposed again.
//
// State transitions:
//   AwaitingGuess --StartRound--> AwaitingFeedback --all correct--> AwaitingGuess
//
// An Engine is driven by one caller at a time and is not safe for concurrent use.

package solver

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/freq"
	"github.com/robalobadob/wordle/apps/go-solver/internal/trie"
)

var (
	ErrNoCandidates   = errors.New("solver: empty candidate set")
	ErrLengthMismatch = errors.New("solver: candidate words differ in length")
	ErrNotInitialized = errors.New("solver: engine not initialized")
	ErrNoRound        = errors.New("solver: no guess awaiting feedback")
	ErrFeedbackLength = errors.New("solver: feedback length differs from word length")
	ErrTreeExhausted  = errors.New("solver: no candidate fits the feedback")
)

// State is the round controller state.
type State int

const (
	AwaitingGuess State = iota
	AwaitingFeedback
)

func (s State) String() string {
	if s == AwaitingFeedback {
		return "awaiting_feedback"
	}
	return "awaiting_guess"
}

// Options tune an Engine.
type Options struct {
	// RemoveSolved enables repeated-evaluation mode: a solved word leaves the
	// candidate pool for every later round.
	RemoveSolved bool

	// OpeningGuess overrides the heuristic opening guess of the first round when
	// its length matches the candidates. Later regenerations use the heuristic.
	OpeningGuess string

	// Filler pads opening-guess positions no frequent letter could claim.
	Filler byte
}

// Engine proposes guesses for one target word per round.
type Engine struct {
	opts Options

	original *trie.Node
	working  *trie.Node
	tables   *freq.Tables

	wordLen   int
	remaining int
	opening   string

	state     State
	lastGuess string
	guesses   int
	confirmed map[int]byte
	misplaced []byte
}

// New returns an engine that must be initialized before use.
func New(opts Options) *Engine {
	if opts.Filler == 0 {
		opts.Filler = freq.DefaultFiller
	}
	return &Engine{opts: opts}
}

// Initialize builds the original tree and frequency tables from words. Duplicate
// words are counted once. The word length is taken from the first word.
func (e *Engine) Initialize(words []string) error {
	if len(words) == 0 {
		return ErrNoCandidates
	}
	wordLen := len(words[0])
	if wordLen == 0 {
		return fmt.Errorf("%w: empty word", ErrNoCandidates)
	}

	seen := make(map[string]struct{}, len(words))
	uniq := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) != wordLen {
			return fmt.Errorf("%w: %q is not %d letters", ErrLengthMismatch, w, wordLen)
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		uniq = append(uniq, w)
	}

	e.wordLen = wordLen
	e.remaining = len(uniq)
	e.original = trie.Build(uniq)
	e.working = nil
	e.tables = freq.New(uniq, wordLen)
	e.state = AwaitingGuess
	e.lastGuess = ""
	e.guesses = 0

	if len(e.opts.OpeningGuess) == wordLen {
		e.opening = e.opts.OpeningGuess
	} else {
		e.opening = e.openingGuess()
	}

	log.Debug().
		Int("candidates", e.remaining).
		Int("wordLen", wordLen).
		Str("opening", e.opening).
		Msg("engine initialized")
	return nil
}

// openingGuess prefers the frequency heuristic and falls back to the heaviest
// path of the original tree once the tables are empty.
func (e *Engine) openingGuess() string {
	if g, ok := e.tables.OpeningGuess(e.opts.Filler); ok {
		return g
	}
	return e.original.Guess()
}

// Move is the harness entry point: nil feedback starts a round and returns the
// opening guess; otherwise the feedback is applied to the pending guess. A solved
// round returns an empty guess and solved == true.
func (e *Engine) Move(fb Feedback) (guess string, solved bool, err error) {
	if fb == nil {
		guess, err = e.StartRound()
		return guess, false, err
	}
	return e.SubmitFeedback(fb)
}

// StartRound resets the working tree from the original tree and the per-round
// letter state, then emits the opening guess. When this round consumes the last
// remaining candidate the guess comes from the original tree instead.
func (e *Engine) StartRound() (string, error) {
	if e.original == nil {
		return "", ErrNotInitialized
	}
	e.remaining--
	e.working = e.original.Copy()
	e.confirmed = make(map[int]byte, e.wordLen)
	e.misplaced = e.misplaced[:0]
	e.guesses = 1
	e.state = AwaitingFeedback

	if e.remaining == 0 {
		e.lastGuess = e.original.Guess()
	} else {
		e.lastGuess = e.opening
	}
	roundsStarted.Inc()

	log.Debug().
		Int("remaining", e.remaining).
		Str("guess", e.lastGuess).
		Msg("round started")
	return e.lastGuess, nil
}

// SubmitFeedback applies feedback for the pending guess and returns the next one.
func (e *Engine) SubmitFeedback(fb Feedback) (guess string, solved bool, err error) {
	if e.original == nil {
		return "", false, ErrNotInitialized
	}
	if e.state != AwaitingFeedback {
		return "", false, ErrNoRound
	}
	if len(fb) != e.wordLen {
		return "", false, fmt.Errorf("%w: got %d, want %d", ErrFeedbackLength, len(fb), e.wordLen)
	}
	for i, m := range fb {
		if !m.Valid() {
			return "", false, fmt.Errorf("%w %q at position %d", ErrBadMarker, byte(m), i)
		}
	}

	if fb.Solved() {
		e.finishRound()
		return "", true, nil
	}

	e.apply(fb)
	e.working.PurgeBranches(e.wordLen)
	e.working.Update()

	next, rest := e.working.GuessPlacing(e.misplaced)
	e.misplaced = rest

	log.Debug().
		Str("guess", e.lastGuess).
		Str("feedback", fb.String()).
		Str("next", next).
		Bytes("misplaced", e.misplaced).
		Msg("feedback applied")

	if len(next) != e.wordLen {
		e.state = AwaitingGuess
		return "", false, fmt.Errorf("%w after %q/%s", ErrTreeExhausted, e.lastGuess, fb)
	}
	e.lastGuess = next
	e.guesses++
	return next, false, nil
}

// finishRound closes a solved round. In repeated-evaluation mode the solved word
// leaves the original tree and the frequency tables, and the opening guess is
// regenerated for the shrunken pool.
func (e *Engine) finishRound() {
	e.state = AwaitingGuess
	roundsSolved.Inc()
	guessesPerRound.Observe(float64(e.guesses))

	if e.opts.RemoveSolved {
		if e.original.RemoveWord(e.lastGuess) {
			e.tables.RemoveWord(e.lastGuess)
		} else {
			log.Warn().Str("word", e.lastGuess).Msg("solved word not in candidate tree")
		}
		e.opening = e.openingGuess()
	}

	log.Debug().
		Str("word", e.lastGuess).
		Int("guesses", e.guesses).
		Int("remaining", e.remaining).
		Msg("round solved")
}

// apply runs the feedback-parsing rule for each position in ascending order.
func (e *Engine) apply(fb Feedback) {
	for i, m := range fb {
		l := e.lastGuess[i]
		switch m {
		case Correct:
			if _, ok := e.confirmed[i]; ok {
				continue
			}
			if j := bytes.IndexByte(e.misplaced, l); j >= 0 {
				e.misplaced = slices.Delete(e.misplaced, j, j+1)
			}
			e.confirmed[i] = l
			e.working.Retain(l, i)
			treeEdits.WithLabelValues("retain").Inc()

		case Misplaced:
			e.misplaced = append(e.misplaced, l)
			e.working.RemoveAt(l, i)
			treeEdits.WithLabelValues("remove_at").Inc()

		case Absent:
			// The letter is known present elsewhere: absence only applies here.
			if e.presentElsewhere(fb, l) {
				e.working.RemoveAt(l, i)
				treeEdits.WithLabelValues("remove_at").Inc()
				continue
			}
			// A duplicate of a confirmed letter must not erase the confirmed one.
			if e.isConfirmed(l) {
				continue
			}
			e.working.Remove(l)
			treeEdits.WithLabelValues("remove").Inc()
		}
	}
}

// presentElsewhere reports whether l occurs in the pending guess at a position
// whose marker is not Absent. Positions are scanned in order; the first hit wins.
func (e *Engine) presentElsewhere(fb Feedback, l byte) bool {
	for j := 0; j < e.wordLen; j++ {
		if e.lastGuess[j] == l && fb[j] != Absent {
			return true
		}
	}
	return false
}

func (e *Engine) isConfirmed(l byte) bool {
	for _, c := range e.confirmed {
		if c == l {
			return true
		}
	}
	return false
}

// WordLen reports the candidate word length (0 before Initialize).
func (e *Engine) WordLen() int { return e.wordLen }

// Remaining reports the remaining-candidate counter.
func (e *Engine) Remaining() int { return e.remaining }

// Exhausted reports whether the last candidate has been consumed and its round
// is over.
func (e *Engine) Exhausted() bool {
	return e.original != nil && e.remaining <= 0 && e.state == AwaitingGuess
}

// State reports the controller state.
func (e *Engine) State() State { return e.state }

// LastGuess reports the most recent guess emitted.
func (e *Engine) LastGuess() string { return e.lastGuess }

// Guesses reports how many guesses the current round has emitted.
func (e *Engine) Guesses() int { return e.guesses }

// Opening reports the opening guess the next round will start with.
func (e *Engine) Opening() string { return e.opening }

// Confirmed returns a copy of the positions proven correct this round.
func (e *Engine) Confirmed() map[int]byte {
	out := make(map[int]byte, len(e.confirmed))
	for k, v := range e.confirmed {
		out[k] = v
	}
	return out
}

// Misplaced returns a copy of the letters known present but not yet placed.
func (e *Engine) Misplaced() []byte { return slices.Clone(e.misplaced) }

// Plausible lists the words still reachable in the working tree, or in the
// original tree between rounds.
func (e *Engine) Plausible() []string {
	if e.working != nil && e.state == AwaitingFeedback {
		return e.working.Words()
	}
	if e.original == nil {
		return nil
	}
	return e.original.Words()
}
