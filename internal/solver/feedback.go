// apps/go-solver/internal/solver/feedback.go
//
// Per-letter feedback markers exchanged with the game harness.
// Defines:
//   - Marker: evaluation of one guessed letter (correct/misplaced/absent).
//   - Feedback: one Marker per letter position, in guess order.
//
// The wire encoding is a single byte per position:
//   '+' correct, 'o' misplaced, '-' absent.

package solver

import (
	"errors"
	"fmt"
)

// Marker represents the evaluation result for a single letter of a guess.
type Marker byte

const (
	Correct   Marker = '+'
	Misplaced Marker = 'o'
	Absent    Marker = '-'
)

// Valid reports whether m is one of the three known markers.
func (m Marker) Valid() bool {
	return m == Correct || m == Misplaced || m == Absent
}

func (m Marker) String() string { return string(rune(m)) }

// Feedback is the ordered marker sequence for one guess.
type Feedback []Marker

// ErrBadMarker is returned by ParseFeedback for bytes outside '+', 'o', '-'.
var ErrBadMarker = errors.New("solver: unknown feedback marker")

// ParseFeedback decodes the wire form, e.g. "+o--+".
func ParseFeedback(s string) (Feedback, error) {
	fb := make(Feedback, len(s))
	for i := 0; i < len(s); i++ {
		m := Marker(s[i])
		if !m.Valid() {
			return nil, fmt.Errorf("%w %q at position %d", ErrBadMarker, s[i], i)
		}
		fb[i] = m
	}
	return fb, nil
}

// Solved reports whether every marker is Correct.
func (fb Feedback) Solved() bool {
	for _, m := range fb {
		if m != Correct {
			return false
		}
	}
	return true
}

func (fb Feedback) String() string {
	b := make([]byte, len(fb))
	for i, m := range fb {
		b[i] = byte(m)
	}
	return string(b)
}
