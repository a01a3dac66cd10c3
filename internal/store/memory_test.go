package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func TestMemory_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	eng := solver.New(solver.Options{})
	s, err := st.Create(ctx, eng)
	require.NoError(t, err)
	_, err = uuid.Parse(s.ID)
	require.NoError(t, err)

	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, eng, got.Engine)
	assert.Equal(t, 1, st.Len())

	require.NoError(t, st.Delete(ctx, s.ID))
	_, err = st.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, st.Delete(ctx, "missing"))
}

func TestMemory_Sweep(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m := &memory{sessions: map[string]*Session{}, now: func() time.Time { return clock }}

	old, err := m.Create(ctx, solver.New(solver.Options{}))
	require.NoError(t, err)
	clock = clock.Add(20 * time.Minute)
	fresh, err := m.Create(ctx, solver.New(solver.Options{}))
	require.NoError(t, err)

	clock = clock.Add(5 * time.Minute)
	assert.Equal(t, 1, m.Sweep(ctx, 10*time.Minute))

	_, err = m.Get(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestMemory_GetRefreshesIdleClock(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m := &memory{sessions: map[string]*Session{}, now: func() time.Time { return clock }}

	s, err := m.Create(ctx, solver.New(solver.Options{}))
	require.NoError(t, err)
	clock = clock.Add(9 * time.Minute)
	_, err = m.Get(ctx, s.ID)
	require.NoError(t, err)

	clock = clock.Add(9 * time.Minute)
	assert.Zero(t, m.Sweep(ctx, 10*time.Minute))
}

func TestMemory_Concurrent(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := st.Create(ctx, solver.New(solver.Options{}))
			if assert.NoError(t, err) {
				_, err = st.Get(ctx, s.ID)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 32, st.Len())
}
