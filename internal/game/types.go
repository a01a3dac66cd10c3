// apps/go-solver/internal/game/types.go
//
// Core type definitions for the scoring harness.
// Defines:
//   - State: coarse game state (playing/won/lost).
//   - Game: one target word being guessed, with its guess history.
//
// Per-letter marks are solver.Marker values so the harness output can be fed
// straight back into the engine.

package game

// State is the coarse state of a Game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single target word.
type Game struct {
	ID       string   // Random hex string correlating a round across log lines.
	Answer   string   // The solution word (always lowercase).
	Rows     int      // Maximum number of guesses allowed; 0 means unlimited.
	Cols     int      // Number of letters per word.
	Guesses  []string // Guesses made so far (lowercased).
	Finished bool     // True once the game is over (won or lost).
	Won      bool     // True if the game was finished with a win.
}
