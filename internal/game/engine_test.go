package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		answer, guess, want string
	}{
		{"crane", "crane", "+++++"},
		{"care", "bear", "-ooo"},
		{"abbey", "babes", "oo++-"},
		{"eerie", "sleep", "--oo-"},
		{"robot", "ooooo", "-+-+-"},
		{"abc", "xyz", "---"},
	}
	for _, tt := range tests {
		t.Run(tt.answer+"/"+tt.guess, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.answer, tt.guess).String())
		})
	}
}

func TestApplyGuess_Win(t *testing.T) {
	g := New(" Crane ", 6)
	require.Equal(t, "crane", g.Answer)
	require.Equal(t, 5, g.Cols)
	assert.Len(t, g.ID, 16)

	fb, st, err := g.ApplyGuess("slate")
	require.NoError(t, err)
	assert.Equal(t, "--+-+", fb.String())
	assert.Equal(t, StatePlaying, st)

	fb, st, err = g.ApplyGuess("CRANE")
	require.NoError(t, err)
	assert.True(t, fb.Solved())
	assert.Equal(t, StateWon, st)
	assert.Equal(t, []string{"slate", "crane"}, g.Guesses)

	_, _, err = g.ApplyGuess("crane")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestApplyGuess_Loss(t *testing.T) {
	g := New("crane", 2)
	_, st, err := g.ApplyGuess("slate")
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, st)

	_, st, err = g.ApplyGuess("trace")
	require.NoError(t, err)
	assert.Equal(t, StateLost, st)
	assert.True(t, g.Finished)
	assert.False(t, g.Won)
}

func TestApplyGuess_Unlimited(t *testing.T) {
	g := New("crane", 0)
	for i := 0; i < 10; i++ {
		_, st, err := g.ApplyGuess("slate")
		require.NoError(t, err)
		require.Equal(t, StatePlaying, st)
	}
}

func TestApplyGuess_Invalid(t *testing.T) {
	g := New("crane", 6)

	_, _, err := g.ApplyGuess("cran")
	assert.ErrorIs(t, err, ErrInvalidGuess)
	_, _, err = g.ApplyGuess("cr4ne")
	assert.ErrorIs(t, err, ErrInvalidGuess)
	assert.Empty(t, g.Guesses)

	// Non-words are fine: heuristic openings such as "traoe" are scored too.
	fb, st, err := g.ApplyGuess("traoe")
	require.NoError(t, err)
	assert.Equal(t, "-++-+", fb.String())
	assert.Equal(t, StatePlaying, st)
}

func TestNew_UniqueIDs(t *testing.T) {
	a, b := New("crane", 6), New("crane", 6)
	assert.Len(t, a.ID, 16)
	assert.NotEqual(t, a.ID, b.ID)
}
