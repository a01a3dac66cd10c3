package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func TestDateKey_UTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	at := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2024-03-01", DateKey(at))
}

func TestWordIndex(t *testing.T) {
	day := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	later := day.Add(10 * time.Hour)

	i := WordIndex(day, "salt", 100)
	assert.GreaterOrEqual(t, i, 0)
	assert.Less(t, i, 100)
	assert.Equal(t, i, WordIndex(later, "salt", 100), "same day, same index")
	assert.Equal(t, 0, WordIndex(day, "salt", 0))

	seen := map[int]bool{}
	for d := 0; d < 30; d++ {
		seen[WordIndex(day.AddDate(0, 0, d), "salt", 1000)] = true
	}
	assert.Greater(t, len(seen), 1, "index changes across days")
}

func TestTarget(t *testing.T) {
	list, err := words.FromSlice([]string{"crane", "slate", "trace"}, words.Options{})
	require.NoError(t, err)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	got := Target(day, "salt", list)
	assert.True(t, list.Contains(got))
	assert.Equal(t, list.At(WordIndex(day, "salt", 3)), got)
	assert.Empty(t, Target(day, "salt", nil))
}
