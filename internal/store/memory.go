// internal/store/memory.go
//
// In-memory implementation of Store.
//
// Characteristics:
//   - Sessions keyed by ID in a map guarded by an RWMutex.
//   - Get returns a copy; callers mutate and Save it back.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/robalobadob/beehint/internal/session"
)

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]session.State
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]session.State)}
}

// Save adds or updates the session.
func (m *memory) Save(ctx context.Context, s session.State) error {
	if s.ID == "" {
		return ErrNoID
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now().UTC()
	}
	s.Candidates = slices.Clone(s.Candidates)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (session.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return session.State{}, ErrNotFound
	}
	s.Candidates = slices.Clone(s.Candidates)
	return s, nil
}

// Delete removes a session; missing IDs are not an error.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Prune drops sessions not updated since before.
func (m *memory) Prune(ctx context.Context, before time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.UpdatedAt.Before(before) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

func (m *memory) Close() error { return nil }
