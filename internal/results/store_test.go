package results

import (
	"context"
	"database/sql"
	"io/fs"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	names, err := assets.Migrations()
	require.NoError(t, err)
	for _, name := range names {
		b, err := fs.ReadFile(assets.FS, name)
		require.NoError(t, err)
		_, err = db.Exec(string(b))
		require.NoError(t, err, name)
	}
	return NewStore(db)
}

func TestStore_InsertAndRecent(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	id, err := s.Insert(ctx, Run{Answer: "crane", Guesses: 3, Solved: true, Trail: []string{"slate", "trace", "crane"}})
	require.NoError(t, err)
	assert.Positive(t, id)

	_, err = s.Insert(ctx, Run{Answer: "eerie", Guesses: 6, Solved: false, Source: "http"})
	require.NoError(t, err)

	runs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "eerie", runs[0].Answer)
	assert.False(t, runs[0].Solved)
	assert.Equal(t, "http", runs[0].Source)
	assert.Nil(t, runs[0].Trail)

	assert.Equal(t, "crane", runs[1].Answer)
	assert.Equal(t, "cli", runs[1].Source)
	assert.Equal(t, []string{"slate", "trace", "crane"}, runs[1].Trail)
	assert.NotEmpty(t, runs[1].CreatedAt)
}

func TestStore_Summary(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	sum, err := s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)

	for _, r := range []Run{
		{Answer: "crane", Guesses: 2, Solved: true},
		{Answer: "slate", Guesses: 4, Solved: true},
		{Answer: "eerie", Guesses: 6, Solved: false},
	} {
		_, err := s.Insert(ctx, r)
		require.NoError(t, err)
	}

	sum, err = s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Runs)
	assert.Equal(t, 2, sum.Solved)
	assert.InDelta(t, 4.0, sum.AvgGuesses, 1e-9)
	assert.Equal(t, 6, sum.MaxGuesses)
}

func TestStore_Hardest(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	for _, r := range []Run{
		{Answer: "crane", Guesses: 2, Solved: true},
		{Answer: "crane", Guesses: 4, Solved: true},
		{Answer: "slate", Guesses: 5, Solved: true},
		{Answer: "eerie", Guesses: 9, Solved: false},
	} {
		_, err := s.Insert(ctx, r)
		require.NoError(t, err)
	}

	got, err := s.Hardest(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 2, "unsolved runs are excluded")
	assert.Equal(t, Hardness{Answer: "slate", Runs: 1, AvgGuesses: 5, MaxGuesses: 5}, got[0])
	assert.Equal(t, Hardness{Answer: "crane", Runs: 2, AvgGuesses: 3, MaxGuesses: 4}, got[1])
}

func TestStore_Daily(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, ok, err := s.Daily(ctx, "2024-03-01")
	require.NoError(t, err)
	assert.False(t, ok)

	id, err := s.Insert(ctx, Run{Answer: "trace", Guesses: 3, Solved: true, Trail: []string{"slate", "crane", "trace"}, Source: "daily"})
	require.NoError(t, err)
	require.NoError(t, s.RecordDaily(ctx, "2024-03-01", 7, id))

	r, ok, err := s.Daily(ctx, "2024-03-01")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, id, r.ID)
	assert.Equal(t, "trace", r.Answer)
	assert.Equal(t, "daily", r.Source)
}
