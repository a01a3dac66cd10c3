// apps/go-solver/internal/game/engine.go
//
// Scoring harness for one target word.
// Responsibilities:
//   - Create games for a given answer of any length.
//   - Validate and apply guesses (length, alphabetic).
//   - Score guesses using the classic two-pass Wordle algorithm.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Scores are solver.Feedback values ('+', 'o', '-').
//   - randomID() is a compact hex identifier for correlating runs in logs.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

var (
	ErrFinished     = errors.New("game finished")
	ErrInvalidGuess = errors.New("invalid guess")
)

// New constructs a game for answer. rows <= 0 allows unlimited guesses. Any
// alphabetic guess of the right length is accepted: the solver's opening guess
// need not be a word.
func New(answer string, rows int) *Game {
	ans := strings.ToLower(strings.TrimSpace(answer))
	if rows < 0 {
		rows = 0
	}
	return &Game{
		ID:      randomID(),
		Answer:  ans,
		Rows:    rows,
		Cols:    len(ans),
		Guesses: []string{},
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
//
// State transitions:
//   - If all tiles are Correct → Finished = true, Won = true.
//   - Else if Rows > 0 and the number of guesses reaches Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) (solver.Feedback, State, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != g.Cols || !isAlpha(guess) {
		return nil, g.State(), ErrInvalidGuess
	}

	fb := Score(g.Answer, guess)
	g.Guesses = append(g.Guesses, guess)

	if fb.Solved() {
		g.Finished, g.Won = true, true
	} else if g.Rows > 0 && len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return fb, g.State(), nil
}

// State reports the coarse state of the game.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Score implements the standard Wordle two‑pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches Correct.
//   - Count remaining (non‑correct) answer letters.
//
// Pass 2:
//   - For each other guess letter: if a remaining count exists, mark Misplaced and
//     decrement it; otherwise mark Absent.
//
// Repeated letters are therefore marked at most as often as the answer holds them.
// answer and guess must have equal length.
func Score(answer, guess string) solver.Feedback {
	n := len(guess)
	res := make(solver.Feedback, n)

	// Letter frequency for the non‑correct positions (a–z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = solver.Correct
		} else if j := idx(answer[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == solver.Correct {
			continue
		}
		if j := idx(guess[i]); j >= 0 && counts[j] > 0 {
			res[i] = solver.Misplaced
			counts[j]--
		} else {
			res[i] = solver.Absent
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25, or -1.
func idx(b byte) int {
	if b < 'a' || b > 'z' {
		return -1
	}
	return int(b - 'a')
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if idx(s[i]) < 0 {
			return false
		}
	}
	return s != ""
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
