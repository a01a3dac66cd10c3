// apps/go-solver/internal/store/memory.go
//
// In-memory store of solver sessions.
// Each session owns one *solver.Engine driven by a single HTTP client.
//
// Characteristics:
//   - Sessions keyed by a random UUID.
//   - Map guarded by an RWMutex; each Session carries its own mutex so moves on
//     different sessions never contend.
//   - Idle sessions are dropped by Sweep.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

var ErrNotFound = errors.New("session not found")

// Session pairs an engine with its bookkeeping. Callers lock Mu around every use
// of Engine.
type Session struct {
	ID      string
	Mu      sync.Mutex
	Engine  *solver.Engine
	Created time.Time

	touched time.Time // guarded by the store mutex
}

// Store defines session persistence.
type Store interface {
	// Create registers eng under a fresh ID.
	Create(ctx context.Context, eng *solver.Engine) (*Session, error)

	// Get retrieves a session by ID and marks it as used.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete forgets a session. Unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Sweep drops sessions idle for longer than maxAge and returns how many.
	Sweep(ctx context.Context, maxAge time.Duration) int

	Len() int
}

type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session), now: time.Now}
}

func (m *memory) Create(ctx context.Context, eng *solver.Engine) (*Session, error) {
	now := m.now()
	s := &Session{ID: uuid.NewString(), Engine: eng, Created: now, touched: now}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s, nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	s.touched = m.now()
	return s, nil
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, maxAge time.Duration) int {
	cutoff := m.now().Add(-maxAge)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.touched.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
